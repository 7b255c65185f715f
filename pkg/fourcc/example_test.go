package fourcc_test

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/dholroyd/four-cc/pkg/fourcc"
)

// ExampleParse demonstrates building a code from a chunk tag string.
func ExampleParse() {
	c, err := fourcc.Parse("RIFF")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(c)
	fmt.Printf("0x%08X\n", c.Uint32BE())
	// Output:
	// RIFF
	// 0x52494646
}

// ExampleFourCC_String shows how control bytes are escaped when rendering.
func ExampleFourCC_String() {
	c := fourcc.New('A', '\n', 'B', 0x00)
	fmt.Println(c)
	// Output: A\nB\x00
}

// ExampleFromUint32BE converts the conventional integer form of a code.
func ExampleFromUint32BE() {
	avcC := fourcc.FromUint32BE(0x61766343)
	fmt.Println(avcC)
	// Output: avcC
}

// ExampleFourCC_MarshalText shows the canonical text forms used by JSON and
// other text-based encoders.
func ExampleFourCC_MarshalText() {
	type box struct {
		Type fourcc.FourCC `json:"type"`
	}

	printable, _ := json.Marshal(box{Type: fourcc.MustParse("moov")})
	binary, _ := json.Marshal(box{Type: fourcc.New(0xFF, 0x00, 0xFF, 0x00)})

	fmt.Println(string(printable))
	fmt.Println(string(binary))
	// Output:
	// {"type":"moov"}
	// {"type":"0xff00ff00"}
}
