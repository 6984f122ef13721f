package arghs

import (
	"fmt"
	"os"
)

func ExampleBuilder() {
	cfg := NewBuilder().
		Program("fetch").
		Usage("Usage: $1 [OPTIONS...] <PATH> <DEST>").
		Named("path", "dest").
		Option("id", KindArray, "ID").
		Option("num", KindString).
		Option("post", KindBool).
		Option("verbose", KindCount).
		Option("dry-run", KindBool).
		Aliases(map[string]string{"i": "id", "n": "num", "p": "post", "v": "verbose"}).
		MustBuild()

	res, err := cfg.Parse([]string{"-pvv", "--id=1,2", "-i", "3", "--dry-run", "src", "dst", "extra", "--", "-x"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("post:", res.Bool("post"))
	fmt.Println("verbose:", res.Count("verbose"))
	fmt.Println("id:", res.Strings("id"))
	fmt.Println("dryRun:", res.Bool("dryRun"))
	fmt.Println("path:", res.String("path"), "dest:", res.String("dest"))
	fmt.Println("positional:", res.Positional())
	fmt.Println("overflow:", res.Overflow())

	// Output:
	// post: true
	// verbose: 2
	// id: [1 2 3]
	// dryRun: true
	// path: src dest: dst
	// positional: [extra]
	// overflow: [-x]
}

func ExampleResult_Diagnostics() {
	cfg := NewBuilder().
		Option("num", KindString).
		Option("post", KindBool).
		MustBuild()

	// Permissive parsing records problems instead of failing.
	res, _ := cfg.Parse([]string{"--post", "--post", "--num", "--fizz=buzz"})
	fmt.Println(res.Diagnostics()["post"])
	fmt.Println(res.Diagnostics()["num"])
	fmt.Println("fizz:", res.Unknown()["fizz"])

	// Output:
	// multiple invocation of boolean option: --post
	// missing value for option: --num
	// fizz: buzz
}

func ExampleConfig_MustParse() {
	term := NewTerminator().OnExit(func(code int) {
		fmt.Println("exit code:", code)
	})
	// Done for testing purposes
	term.Printer().Redirect(os.Stdout)

	cfg := NewBuilder().
		Program("fetch").
		Option("id", KindArray, "ID").
		Option("num", KindString).
		Option("post", KindBool).
		Option("verbose", KindCount).
		Aliases(map[string]string{"i": "id", "n": "num", "p": "post", "v": "verbose"}).
		HelpDescriptions(map[string]string{
			"id":  "use item id(s) for request",
			"num": "number of items to retrieve",
		}).
		Strict().
		Terminator(term).
		MustBuild()

	cfg.MustParse([]string{"-h"})

	// Output:
	// Usage: fetch [OPTIONS...]
	//
	// Options:
	//   -h, --help     show this help message and exit
	//   -i, --id <ID>  use item id(s) for request
	//   -n, --num <x>  number of items to retrieve
	//   -p, --post     [bool]
	//   -v, --verbose  [count]
	// exit code: 0
}
