package xregexp

import (
	"github.com/jacoelho/xregexp/pkg/unicodedata"
)

type boolOption struct {
	value bool
	set   bool
}

func (o boolOption) resolved(def bool) bool {
	if !o.set {
		return def
	}
	return o.value
}

// Options configures pattern translation and character-class parsing. The
// zero value enables back references, lazy quantifiers, the XSD 1.1 "Is"
// block syntax, and anchors.
type Options struct {
	backReferences  boolOption
	lazyQuantifiers boolOption
	isSyntax        boolOption
	anchors         boolOption
	registry        *unicodedata.Registry
}

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// WithBackReferences controls whether groups capture and \1..\9 escapes are
// allowed. XPath expression dialects disable this.
func (o Options) WithBackReferences(value bool) Options {
	o.backReferences = boolOption{value: value, set: true}
	return o
}

// WithLazyQuantifiers controls whether a single ? may follow a quantifier.
func (o Options) WithLazyQuantifiers(value bool) Options {
	o.lazyQuantifiers = boolOption{value: value, set: true}
	return o
}

// WithIsSyntax controls the XSD 1.1 compatibility rule that resolves an
// unknown \p{IsName} block to the full code space instead of failing.
func (o Options) WithIsSyntax(value bool) Options {
	o.isSyntax = boolOption{value: value, set: true}
	return o
}

// WithAnchors controls whether ^ and $ are allowed in the pattern. With
// anchors disabled the translation is wrapped to match whole strings only,
// as XSD validation requires.
func (o Options) WithAnchors(value bool) Options {
	o.anchors = boolOption{value: value, set: true}
	return o
}

// WithRegistry pins translation to a specific Unicode data snapshot instead
// of the installed one.
func (o Options) WithRegistry(r *unicodedata.Registry) Options {
	o.registry = r
	return o
}

type resolvedOptions struct {
	backReferences  bool
	lazyQuantifiers bool
	isSyntax        bool
	anchors         bool
	registry        *unicodedata.Registry
}

func (o Options) withDefaults() resolvedOptions {
	r := o.registry
	if r == nil {
		r = unicodedata.Default()
	}
	return resolvedOptions{
		backReferences:  o.backReferences.resolved(true),
		lazyQuantifiers: o.lazyQuantifiers.resolved(true),
		isSyntax:        o.isSyntax.resolved(true),
		anchors:         o.anchors.resolved(true),
		registry:        r,
	}
}
