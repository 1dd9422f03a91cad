package meta

// thirdPartyNotice describes the license terms a single third-party
// dependency is distributed under.
type thirdPartyNotice struct {
	// Name is the module path of the dependency.
	Name string
	// License is the SPDX identifier of the dependency's license.
	License string
}

// thirdPartyNotices lists the third-party dependencies this toolchain links
// against, along with their licenses. It does not attempt to reproduce the
// full text of each license; that text is available from each dependency's
// own repository and is not duplicated here to avoid drift between this
// listing and the license each project actually ships.
var thirdPartyNotices = []thirdPartyNotice{
	{"github.com/BurntSushi/toml", "MIT"},
	{"github.com/bmatcuk/doublestar/v4", "MIT"},
	{"github.com/dustin/go-humanize", "MIT"},
	{"github.com/eknkc/basex", "MIT"},
	{"github.com/fatih/color", "MIT"},
	{"github.com/google/uuid", "BSD-3-Clause"},
	{"github.com/hectane/go-acl", "MIT"},
	{"github.com/mattn/go-colorable", "MIT"},
	{"github.com/mattn/go-isatty", "MIT"},
	{"github.com/pkg/errors", "BSD-2-Clause"},
	{"github.com/spf13/cobra", "Apache-2.0"},
	{"github.com/spf13/pflag", "BSD-3-Clause"},
	{"golang.org/x/sys", "BSD-3-Clause"},
	{"gopkg.in/yaml.v3", "MIT AND Apache-2.0"},
	{"howett.net/plist", "BSD-3-Clause"},
}

// LegalNotice returns a short legal notice covering the toolchain and the
// licenses of the third-party dependencies it links against.
func LegalNotice() string {
	notice := "This software links against the following third-party packages:\n\n"
	for _, dependency := range thirdPartyNotices {
		notice += dependency.Name + " (" + dependency.License + ")\n"
	}
	notice += "\nSee each dependency's repository for the full text of its license.\n"
	return notice
}
