package types

import "sort"

// MovePackage is a published package: its bytecode modules plus the
// bookkeeping tables that make upgrades resolvable.
//
// Most packages are uniquely identified by their id — there is exactly
// one version per id — but the version is still stored because a package
// may be an upgrade of another (at a different id), in which case its
// version is exactly one greater than the package it replaces. Framework
// packages are the exception: all their versions live at one id, at
// increasing versions. Packages are always addressed by id alone and
// loaded at their latest version.
type MovePackage struct {
	Id      ObjectId
	Version Version

	// Modules maps module name to raw serialized bytecode. Wire order
	// is ascending by name regardless of how the map was built.
	Modules map[Identifier][]byte

	// TypeOriginTable records, for each type, the package version that
	// first defined it.
	TypeOriginTable []TypeOrigin

	// LinkageTable maps each dependency's original package id to the
	// upgraded version this package links against. Wire order is
	// ascending by id.
	LinkageTable map[ObjectId]UpgradeInfo
}

// TypeOrigin records which package first defined a struct.
type TypeOrigin struct {
	ModuleName Identifier
	StructName Identifier
	Package    ObjectId
}

// UpgradeInfo identifies the upgraded version of a dependency.
type UpgradeInfo struct {
	UpgradedId      ObjectId
	UpgradedVersion Version
}

// sortedModuleNames returns the module names in wire order.
func (p *MovePackage) sortedModuleNames() []Identifier {
	names := make([]Identifier, 0, len(p.Modules))
	for name := range p.Modules {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// sortedLinkageIds returns the linkage table keys in wire order.
func (p *MovePackage) sortedLinkageIds() []ObjectId {
	ids := make([]ObjectId, 0, len(p.LinkageTable))
	for id := range p.LinkageTable {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Cmp(ids[j]) < 0 })
	return ids
}
