// Package path implements lexical decomposition of filesystem paths into
// components, supporting Unix, Windows, and URL path styles.
//
// Unlike the standard library's path package (Unix-only) and filepath package
// (OS-specific), this package automatically detects the path style and applies
// appropriate rules:
//
//   - Unix-style: Forward slashes, single root /
//   - Windows-style: Drive letters (C:\), backslashes or forward slashes
//   - URL-style: Forward slashes, protocol://host/ roots
//
// A path is Windows-style only when it begins with a drive letter, and
// URL-style only when it begins with a scheme followed by "://". Anywhere
// else, a backslash or "://" is ordinary text within a name.
//
// All path operations are purely lexical. In particular, they do not access
// the filesystem, resolve symbolic links, or collapse .. elements.
//
//	path.Components("/foo/bar")  // [Root, Normal(foo), Normal(bar)]
//	path.Components(`C:\foo`)    // [Prefix(C:), Root, Normal(foo)]
package path

import (
	"strconv"
	"strings"
)

// A Kind identifies the role of a [Component] within a path.
type Kind int

const (
	// Normal is a plain name segment such as "foo".
	Normal Kind = iota
	// Prefix is a Windows drive such as "C:" or a URL authority such as
	// "https://example.com".
	Prefix
	// Root is the root separator following an optional Prefix.
	Root
	// Cur is a leading "." of a relative path.
	Cur
	// Parent is a ".." element.
	Parent
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case Prefix:
		return "Prefix"
	case Root:
		return "Root"
	case Cur:
		return "Cur"
	case Parent:
		return "Parent"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// A Component is a single element of a path.
//
// Components are comparable. Two components are equal when their kinds
// match and their names match byte for byte. Drive letters are stored in
// upper case, so C: and c: are the same prefix. Name is empty for Root.
type Component struct {
	Kind Kind
	Name string
}

// String returns the component as it appears in a path.
// Root is rendered as a forward slash; use [Format] for style-aware output.
func (c Component) String() string {
	if c.Kind == Root {
		return "/"
	}
	return c.Name
}

// Components returns the components of path in order.
//
// Repeated separators, a trailing separator, and "." elements other than a
// leading one produce no component. A leading "." of a path without a prefix
// or root produces [Cur]. ".." produces [Parent] and is never resolved.
// The empty path has no components.
//
// Examples:
//
//	Components("foo//bar/")     // [Normal(foo), Normal(bar)]
//	Components("./foo/./bar")   // [Cur, Normal(foo), Normal(bar)]
//	Components("/a/../b")       // [Root, Normal(a), Parent, Normal(b)]
//	Components(`C:foo`)         // [Prefix(C:), Normal(foo)]
//	Components("s3://bucket/k") // [Prefix(s3://bucket), Root, Normal(k)]
func Components(path string) []Component {
	if path == "" {
		return nil
	}

	style := detectStyle([]string{path})
	var comps []Component
	rest := path

	switch style.kind {
	case styleURL:
		// protocol://host is the prefix; the path after it is always
		// rooted, with or without a slash.
		hostStart := schemeEnd(path) + 3
		hostEnd := strings.IndexByte(path[hostStart:], '/')
		if hostEnd < 0 {
			hostEnd = len(path)
		} else {
			hostEnd += hostStart
		}
		comps = append(comps,
			Component{Kind: Prefix, Name: path[:hostEnd]},
			Component{Kind: Root},
		)
		rest = path[hostEnd:]
	case styleWindows:
		comps = append(comps,
			Component{Kind: Prefix, Name: strings.ToUpper(path[:2])})
		rest = path[2:]
		if rest != "" && style.isSep(rest[0]) {
			comps = append(comps, Component{Kind: Root})
		}
	default:
		if path[0] == '/' {
			comps = append(comps, Component{Kind: Root})
		}
	}

	bare := len(comps) == 0
	elems := strings.FieldsFunc(rest, func(r rune) bool {
		return r < 0x80 && style.isSep(byte(r))
	})
	for i, e := range elems {
		switch e {
		case ".":
			if i == 0 && bare {
				comps = append(comps, Component{Kind: Cur, Name: e})
			}
		case "..":
			comps = append(comps, Component{Kind: Parent, Name: e})
		default:
			comps = append(comps, Component{Kind: Normal, Name: e})
		}
	}
	return comps
}

// Format joins components into a path using sep as the separator.
// A Prefix is written as is, a Root is written as sep, and every other
// component is separated from the one before it by sep unless it directly
// follows a Prefix or Root.
//
// Examples:
//
//	Format('/', Components("/foo/bar"))  // "/foo/bar"
//	Format('\\', Components(`C:/foo`))   // `C:\foo`
//	Format('/', nil)                     // ""
func Format(sep byte, comps []Component) string {
	var b strings.Builder
	var needSep bool
	for _, c := range comps {
		switch c.Kind {
		case Prefix:
			b.WriteString(c.Name)
			needSep = false
		case Root:
			b.WriteByte(sep)
			needSep = false
		default:
			if needSep {
				b.WriteByte(sep)
			}
			b.WriteString(c.Name)
			needSep = true
		}
	}
	return b.String()
}

// Separator returns the separator of the style detected for path:
// a backslash for Windows-style paths and a forward slash otherwise.
func Separator(path string) byte {
	return detectStyle([]string{path}).sep
}

// IsAbs reports whether the path is lexically absolute.
// Absolute paths include:
//   - Paths starting with "/" (Unix-style)
//   - Paths starting with [letter]:\ or [letter]:/ (Windows-style)
//   - Paths starting with [protocol]:// (URL-style)
func IsAbs(path string) bool {
	if path == "" {
		return false
	}

	// Unix-style: starts with /
	if path[0] == '/' {
		return true
	}

	// Windows-style: starts with [letter]:\
	if len(path) >= 3 && hasDrive(path) &&
		(path[2] == '\\' || path[2] == '/') {
		return true
	}

	// URL-style: starts with [protocol]://
	if schemeEnd(path) >= 0 {
		return true
	}

	return false
}

// pathStyle represents the detected path style
type pathStyle struct {
	kind styleKind
	sep  byte
}

// isSep reports whether c separates elements in this style.
// Windows accepts both separators.
func (s pathStyle) isSep(c byte) bool {
	if s.kind == styleWindows {
		return c == '\\' || c == '/'
	}
	return c == '/'
}

type styleKind int

const (
	styleUnix styleKind = iota
	styleWindows
	styleURL
)

// detectStyle determines the path style from the elements
func detectStyle(elem []string) pathStyle {
	for _, e := range elem {
		if e == "" {
			continue
		}

		if hasDrive(e) {
			return pathStyle{kind: styleWindows, sep: '\\'}
		}

		if schemeEnd(e) >= 0 {
			return pathStyle{kind: styleURL, sep: '/'}
		}

		// The first non-empty element decides.
		break
	}

	return pathStyle{kind: styleUnix, sep: '/'}
}

// hasDrive reports whether path begins with [letter]:
func hasDrive(path string) bool {
	return len(path) >= 2 && path[1] == ':' &&
		((path[0] >= 'A' && path[0] <= 'Z') ||
			(path[0] >= 'a' && path[0] <= 'z'))
}

// schemeEnd returns the index of the "://" that follows a URL scheme at the
// start of path, or -1 if path does not begin with one. A scheme is a letter
// followed by letters, digits, "+", "-", or ".".
func schemeEnd(path string) int {
	i := strings.Index(path, "://")
	if i < 1 {
		return -1
	}
	for j := 0; j < i; j++ {
		c := path[j]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case j > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' ||
			c == '.'):
		default:
			return -1
		}
	}
	return i
}
