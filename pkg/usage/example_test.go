package usage_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/cargo-dupdeps/pkg/usage"
)

func ExampleNormalize() {
	fmt.Println(usage.Normalize("left-pad"))
	fmt.Println(usage.Normalize("serde"))
	// Output:
	// left_pad
	// serde
}

func ExampleVerifier_VerifyAll() {
	src := usage.MemorySearcher{
		"src/main.rs": "fn main() {\n    let v: serde_json::Value = serde_json::from_str(\"{}\").unwrap();\n}\n",
	}
	v := &usage.Verifier{Searcher: src}

	findings, _ := v.VerifyAll(context.Background(), []string{"serde_json", "left-pad"})
	for _, f := range findings {
		fmt.Printf("%s: %s\n", f.Name, f.Verdict)
	}
	// Output:
	// left-pad: maybe unused
	// serde_json: used
}
