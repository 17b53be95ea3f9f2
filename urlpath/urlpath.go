// Package urlpath implements an immutable path-only URL value: pathname,
// query parameters and fragment, with no scheme or authority.
//
// The original motivation is representing in-app routes and redirect targets
// without committing to a host. net/url parses origin-less references
// natively, so Path is a plain three-field value; reference resolution
// against a bare "/" root supplies the standard dot-segment normalization
// and percent-encoding.
//
// Example:
//
//	p := urlpath.FromString("/foo?bar=yes#baz")
//	fmt.Println(p.Pathname()) // /foo
package urlpath

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jessekelly881/fpstd/option"
	"github.com/jessekelly881/fpstd/result"
	"github.com/jessekelly881/fpstd/urlparams"
)

// ErrRelativeBase reports a ToURL base that parsed but carries no absolute
// origin.
var ErrRelativeBase = errors.New("urlpath: base URL must be absolute")

// Path is the triple (pathname, query parameters, fragment). The pathname is
// held in escaped form and always begins with "/"; the fragment is held in
// escaped form without its "#" prefix. The zero value is the root path "/".
// Every setter and modifier returns a new value; a Path is never mutated.
type Path struct {
	pathname string
	params   urlparams.Params
	hash     string
}

// pathRoot is the resolution base for dot-segment removal. It carries no
// scheme or host, so nothing synthetic can leak into results.
var pathRoot = &url.URL{Path: "/"}

// FromPathname builds a Path whose pathname is p normalized per standard URL
// resolution: ".." pops a segment, "." is dropped, dot-segments beyond the
// root are absorbed, and "?"/"#" are percent-encoded as literal pathname
// characters rather than treated as delimiters. Query and fragment are
// empty. Total for every input, including the empty string.
//
// Example:
//
//	p := urlpath.FromPathname("/foo/bar/../baz")
//	fmt.Println(p) // /foo/baz
func FromPathname(p string) Path {
	return Path{pathname: normalizePathname(p)}
}

// FromString parses s as an origin-less URL reference. Inputs that carry
// their own scheme or authority (and would therefore escape to a foreign
// origin) are re-parsed as a root-relative reference by prefixing "/", so
// the result never holds an authority. Total: no string fails to parse.
//
// Example:
//
//	p := urlpath.FromString("/foo?bar=yes#baz")
//	fmt.Println(p.Hash()) // #baz
func FromString(s string) Path {
	if ref, ok := parseReference(s); ok {
		return fromReference(ref)
	}
	if ref, ok := parseReference("/" + s); ok {
		return fromReference(ref)
	}
	return FromPathname(s)
}

// FromURL projects pathname, query and fragment off u, discarding its scheme
// and authority. Total; a nil URL yields the root path.
func FromURL(u *url.URL) Path {
	if u == nil {
		return Path{pathname: "/"}
	}
	return fromReference(u)
}

// ToURL parses base as an absolute URL and returns it with pathname, query
// and fragment overwritten from p. Unparseable bases propagate the parse
// error; parseable bases without an absolute origin (such as "samhh.com")
// fail with ErrRelativeBase. Callers wanting their own error value compose
// with result.MapErr.
//
// Example:
//
//	res := urlpath.FromPathname("/foo/baz").ToURL("https://samhh.com")
//	u, _ := res.Unwrap()
//	fmt.Println(u) // https://samhh.com/foo/baz
func (p Path) ToURL(base string) result.Result[*url.URL] {
	u, err := url.Parse(base)
	if err != nil {
		return result.Err[*url.URL](err)
	}
	if !u.IsAbs() || u.Host == "" {
		return result.Err[*url.URL](fmt.Errorf("%w: %q", ErrRelativeBase, base))
	}
	out := *u
	out.ForceQuery = false
	out.RawQuery = p.params.String()
	setEscapedPath(&out, p.Pathname())
	setEscapedFragment(&out, p.hash)
	return result.Ok(&out)
}

// setEscapedPath installs an already-escaped pathname on u without reparsing
// it as a URL reference, so a "//"-prefixed pathname stays a path and can
// never be promoted to an authority.
func setEscapedPath(u *url.URL, escaped string) {
	decoded, err := url.PathUnescape(escaped)
	if err != nil {
		// unreachable for pathnames normalized by this package
		u.Path = escaped
		u.RawPath = ""
		return
	}
	u.Path = decoded
	u.RawPath = escaped
}

// setEscapedFragment installs an already-escaped fragment on u.
func setEscapedFragment(u *url.URL, escaped string) {
	if escaped == "" {
		u.Fragment = ""
		u.RawFragment = ""
		return
	}
	decoded, err := url.PathUnescape(escaped)
	if err != nil {
		u.Fragment = escaped
		u.RawFragment = ""
		return
	}
	u.Fragment = decoded
	u.RawFragment = escaped
}

// ToURLOption behaves like ToURL but discards the error detail.
func (p Path) ToURLOption(base string) option.Option[*url.URL] {
	u, err := p.ToURL(base).Unwrap()
	return option.FromOk(u, err == nil)
}

// String serializes the Path as pathname + "?"-prefixed query + "#"-prefixed
// fragment. It is the inverse of FromString up to normalization.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString(p.Pathname())
	b.WriteString(p.params.LeadingString())
	if p.hash != "" {
		b.WriteByte('#')
		b.WriteString(p.hash)
	}
	return b.String()
}

// Pathname returns the escaped pathname, always beginning with "/".
func (p Path) Pathname() string {
	if p.pathname == "" {
		return "/"
	}
	return p.pathname
}

// SetPathname returns a copy of p whose pathname is pathname, normalized the
// same way FromPathname normalizes its input. Query and fragment carry over.
func (p Path) SetPathname(pathname string) Path {
	return Path{
		pathname: normalizePathname(pathname),
		params:   p.params,
		hash:     p.hash,
	}
}

// ModifyPathname returns a copy of p whose pathname has been transformed by
// fn, then normalized.
//
// Example:
//
//	p := urlpath.FromPathname("/posts").ModifyPathname(func(s string) string {
//		return s + "/1"
//	})
//	fmt.Println(p) // /posts/1
func (p Path) ModifyPathname(fn func(string) string) Path {
	return p.SetPathname(fn(p.Pathname()))
}

// Params returns the query-parameter collection.
func (p Path) Params() urlparams.Params {
	return p.params
}

// SetParams returns a copy of p carrying ps. The stored collection is cloned
// so later reuse of ps by the caller cannot alias the Path.
func (p Path) SetParams(ps urlparams.Params) Path {
	return Path{pathname: p.pathname, params: ps.Clone(), hash: p.hash}
}

// ModifyParams returns a copy of p whose query collection has been
// transformed by fn.
//
// Example:
//
//	p := urlpath.FromString("/search?q=go").ModifyParams(
//		func(ps urlparams.Params) urlparams.Params {
//			return ps.Set("page", "2")
//		})
//	fmt.Println(p) // /search?q=go&page=2
func (p Path) ModifyParams(fn func(urlparams.Params) urlparams.Params) Path {
	return p.SetParams(fn(p.params))
}

// Hash returns the fragment with its "#" prefix, or "" when absent.
func (p Path) Hash() string {
	if p.hash == "" {
		return ""
	}
	return "#" + p.hash
}

// SetHash returns a copy of p carrying the given fragment. A leading "#" is
// tolerated and stripped before storing.
func (p Path) SetHash(hash string) Path {
	return Path{pathname: p.pathname, params: p.params, hash: normalizeHash(hash)}
}

// ModifyHash returns a copy of p whose fragment has been transformed by fn.
// fn receives the same "#"-prefixed form Hash returns.
func (p Path) ModifyHash(fn func(string) string) Path {
	return p.SetHash(fn(p.Hash()))
}

// Clone returns a deep, alias-free copy: the query pairs get an independent
// backing array, so no operation on either value can observe the other.
func (p Path) Clone() Path {
	return Path{pathname: p.pathname, params: p.params.Clone(), hash: p.hash}
}

// Equal reports whether two Paths serialize identically. Both sides are
// normalized on construction, so this matches structural equality of the
// (pathname, params, fragment) triple up to query-pair order.
func (p Path) Equal(other Path) bool {
	return p.String() == other.String()
}

// IsPathOnly recognizes a foreign *url.URL that is really a path-only
// reference: no scheme, no opaque part, no authority. Such values convert to
// a Path via FromURL without information loss.
func IsPathOnly(u *url.URL) bool {
	return u != nil && u.Scheme == "" && u.Opaque == "" && u.Host == "" && u.User == nil
}

// fromReference projects the path-relevant parts of an already-parsed URL.
func fromReference(u *url.URL) Path {
	return Path{
		pathname: normalizePathname(u.EscapedPath()),
		params:   urlparams.FromString(u.RawQuery),
		hash:     u.EscapedFragment(),
	}
}

// parseReference parses s and accepts it only when it carries neither scheme
// nor authority.
func parseReference(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil || u.IsAbs() || u.Opaque != "" || u.Host != "" || u.User != nil {
		return nil, false
	}
	return u, true
}

// pathDelimiters pre-encodes the characters that would otherwise split a
// bare pathname into query and fragment parts.
var pathDelimiters = strings.NewReplacer("?", "%3F", "#", "%23")

// normalizePathname interprets p as a literal pathname: delimiters become
// percent-encoded path characters, valid percent sequences survive, and dot
// segments are resolved against the root. The result always begins with "/".
func normalizePathname(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	resolved := pathRoot.ResolveReference(pathRef(p))
	escaped := resolved.EscapedPath()
	if escaped == "" {
		return "/"
	}
	return escaped
}

// pathRef builds the reference used for normalization, falling back to full
// escaping when p does not survive a straight parse.
func pathRef(p string) *url.URL {
	escaped := pathDelimiters.Replace(p)
	if ref, err := url.Parse(escaped); err == nil && !ref.IsAbs() && ref.Opaque == "" && ref.Host == "" {
		return ref
	}
	return &url.URL{Path: p}
}

// normalizeHash strips an optional leading "#" and stores the fragment in
// escaped form.
func normalizeHash(h string) string {
	h = strings.TrimPrefix(h, "#")
	if h == "" {
		return ""
	}
	if u, err := url.Parse("#" + h); err == nil {
		return u.EscapedFragment()
	}
	return (&url.URL{Fragment: h}).EscapedFragment()
}
