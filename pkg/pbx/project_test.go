package pbx

import (
	"strings"
	"testing"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem/memory"
)

const fixtureProject = `<?xml version="1.0" encoding="UTF-8"?>
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
				<string>COPYPHASE00000000000001</string>
			</array>
		</dict>
		<key>COPYPHASE00000000000001</key>
		<dict>
			<key>isa</key>
			<string>PBXCopyFilesBuildPhase</string>
			<key>dstPath</key>
			<string>Resources</string>
			<key>files</key>
			<array>
				<string>logo.png</string>
			</array>
		</dict>
	</dict>
</dict>
</plist>
`

func TestDecodeAndResolveTarget(t *testing.T) {
	project, err := Decode([]byte(fixtureProject))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	target, err := project.Target("App")
	if err != nil {
		t.Fatalf("Target failed: %v", err)
	}
	if target.Name() != "App" {
		t.Errorf("Name() = %q, want %q", target.Name(), "App")
	}

	phases, err := target.BuildPhases()
	if err != nil {
		t.Fatalf("BuildPhases failed: %v", err)
	}
	if len(phases) != 1 {
		t.Fatalf("len(phases) = %d, want 1", len(phases))
	}
	copyPhase, ok := phases[0].(*CopyFilesBuildPhase)
	if !ok {
		t.Fatalf("phases[0] has type %T, want *CopyFilesBuildPhase", phases[0])
	}
	if copyPhase.destinationPath != "Resources" {
		t.Errorf("destinationPath = %q, want %q", copyPhase.destinationPath, "Resources")
	}
}

func TestTargetNotFound(t *testing.T) {
	project, err := Decode([]byte(fixtureProject))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if _, err := project.Target("Nonexistent"); err == nil {
		t.Fatal("expected error for nonexistent target")
	}
}

func TestCopyFilesBuildPhaseExecute(t *testing.T) {
	project, err := Decode([]byte(fixtureProject))
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

	fs := memory.New()
	if err := fs.CreateDirectory("/src", true); err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}
	if err := fs.Write("/src/logo.png", []byte("pretend-png-bytes")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := fs.CreateDirectory("/dst", true); err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}

	for _, phase := range phases {
		if err := phase.Execute(fs, "/src", "/dst"); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
	}

	if !fs.IsFile("/dst/Resources/logo.png") {
		t.Error("expected /dst/Resources/logo.png to exist after copy phase")
	}
	content, err := fs.Read("/dst/Resources/logo.png", 0, -1)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !strings.Contains(string(content), "pretend-png-bytes") {
		t.Errorf("unexpected copied content: %q", content)
	}
}
