package pbx

import (
	"testing"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem/memory"
)

const fixtureShellScriptProject = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>rootObject</key>
	<string>ROOT000000000000000000001</string>
	<key>objects</key>
	<dict>
		<key>TARGET0000000000000000001</key>
		<dict>
			<key>isa</key>
			<string>PBXNativeTarget</string>
			<key>name</key>
			<string>App</string>
			<key>buildPhases</key>
			<array>
				<string>SHELLPHASE00000000000001</string>
			</array>
		</dict>
		<key>SHELLPHASE00000000000001</key>
		<dict>
			<key>isa</key>
			<string>PBXShellScriptBuildPhase</string>
			<key>shellScript</key>
			<string>echo hello</string>
		</dict>
	</dict>
</dict>
</plist>
`

func TestShellScriptBuildPhaseNotExecuted(t *testing.T) {
	project, err := Decode([]byte(fixtureShellScriptProject))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	target, err := project.Target("App")
	if err != nil {
		t.Fatalf("Target failed: %v", err)
	}
	phases, err := target.BuildPhases()
	if err != nil {
		t.Fatalf("BuildPhases failed: %v", err)
	}
	if len(phases) != 1 {
		t.Fatalf("len(phases) = %d, want 1", len(phases))
	}

	shellPhase, ok := phases[0].(*ShellScriptBuildPhase)
	if !ok {
		t.Fatalf("phases[0] has type %T, want *ShellScriptBuildPhase", phases[0])
	}
	if shellPhase.Script() != "echo hello" {
		t.Errorf("Script() = %q, want %q", shellPhase.Script(), "echo hello")
	}

	fs := memory.New()
	if err := shellPhase.Execute(fs, "/src", "/dst"); err != ErrShellScriptNotExecuted {
		t.Errorf("Execute() error = %v, want %v", err, ErrShellScriptNotExecuted)
	}
}
