package encoding

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xcbuild-go/xcbuild/pkg/logging"
	"github.com/xcbuild-go/xcbuild/pkg/must"
)

// atomicWriteTemporaryNamePrefix is the file name prefix used for the
// intermediate temporary file in MarshalAndSave's atomic write.
const atomicWriteTemporaryNamePrefix = ".xcbuild-encoding-write"

// LoadAndUnmarshal provides the underlying loading and unmarshaling
// functionality for the encoding package. It reads the data at the specified
// path and then invokes the specified unmarshaling callback (usually a closure)
// to decode the data.
func LoadAndUnmarshal(path string, unmarshal func([]byte) error) error {
	// Grab the file contents.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return fmt.Errorf("unable to load file: %w", err)
	}

	// Perform the unmarshaling.
	if err := unmarshal(data); err != nil {
		return fmt.Errorf("unable to unmarshal data: %w", err)
	}

	// Success.
	return nil
}

// MarshalAndSave provide the underlying marshaling and saving functionality for
// the encoding package. It invokes the specified marshaling callback (usually a
// closure) and writes the result atomically to the specified path. The data is
// saved with read/write permissions for the user only.
func MarshalAndSave(path string, logger *logging.Logger, marshal func() ([]byte, error)) error {
	// Marshal the message.
	data, err := marshal()
	if err != nil {
		return fmt.Errorf("unable to marshal message: %w", err)
	}

	// Write the file atomically with secure file permissions: a temporary
	// file in the same directory (so the final rename is same-filesystem),
	// swapped into place once its content is fully written.
	temporary, err := os.CreateTemp(filepath.Dir(path), atomicWriteTemporaryNamePrefix)
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	if _, err := temporary.Write(data); err != nil {
		must.Close(temporary, logger)
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to write message data: %w", err)
	}
	if err := temporary.Close(); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to close temporary file: %w", err)
	}
	if err := os.Chmod(temporary.Name(), 0600); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to set file permissions: %w", err)
	}
	if err := os.Rename(temporary.Name(), path); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to rename file into place: %w", err)
	}

	// Success.
	return nil
}
