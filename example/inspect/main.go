// Command inspect decodes a canonical object from a base64 argument and
// prints its derived identity, ownership, and payload summary.
//
// The payload may use either base64 alphabet, padded or not, exactly as
// it would arrive from a textual query transport:
//
//	inspect AAEBIE8rAAAAAAAo...
package main

import (
	"fmt"
	"os"

	"github.com/blockberries/objectberry/query"
	"github.com/blockberries/objectberry/types"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <base64-object>")
		os.Exit(2)
	}

	raw, err := query.DecodeBase64(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}

	var obj types.Object
	if err := obj.UnmarshalBinary(raw); err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}

	id, err := obj.ObjectId()
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}
	digest, err := obj.Digest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("id:       %s\n", id)
	fmt.Printf("version:  %d\n", obj.Version())
	fmt.Printf("type:     %s\n", obj.Type())
	fmt.Printf("owner:    %s\n", obj.Owner())
	fmt.Printf("prev tx:  %s\n", obj.PreviousTransaction())
	fmt.Printf("rebate:   %d\n", obj.StorageRebate())
	fmt.Printf("digest:   %s\n", digest)

	if s, ok := obj.AsStruct(); ok {
		fmt.Printf("contents: %d bytes\n", len(s.Contents()))
	} else if pkg := obj.Data().Package; pkg != nil {
		fmt.Printf("modules:  %d\n", len(pkg.Modules))
	}
}
