package xregexp_test

import (
	"fmt"

	"github.com/jacoelho/xregexp"
)

func ExampleTranslate() {
	translated, err := xregexp.Translate("[a-z-[aeiou]]")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(translated)
	// Output: [b-df-hj-np-tv-z]
}

func ExampleTranslateWith() {
	opts := xregexp.NewOptions().WithAnchors(false)
	translated, err := xregexp.TranslateWith(".+", opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(translated)
	// Output: ^([^\r\n]+)$(?!\n\Z)
}

func ExampleCompile() {
	re, err := xregexp.Compile(`\p{Lu}{3}`)
	if err != nil {
		fmt.Println(err)
		return
	}
	ok, err := re.MatchString("ABC")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ok)
	// Output: true
}
