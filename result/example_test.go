package result_test

import (
	"fmt"
	"net/url"

	"github.com/jessekelly881/fpstd/result"
)

func ExampleFromTuple() {
	res := result.FromTuple(url.Parse("https://samhh.com"))
	href := result.Map(res, (*url.URL).String)
	fmt.Println(href.UnwrapOr("unparseable"))
	// Output:
	// https://samhh.com
}

func ExampleMapErr() {
	failure := result.Err[*url.URL](fmt.Errorf("missing scheme"))
	custom := result.MapErr(failure, func(err error) error {
		return fmt.Errorf("bad redirect target: %w", err)
	})
	fmt.Println(custom.Err())
	// Output:
	// bad redirect target: missing scheme
}

func ExampleFold() {
	res := result.FromTuple(url.Parse("https://samhh.com/about"))
	message := result.Fold(res,
		func(err error) string { return "failed: " + err.Error() },
		func(u *url.URL) string { return "path: " + u.Path },
	)
	fmt.Println(message)
	// Output:
	// path: /about
}
