package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// decodeFile reads a YAML (or JSON, which is valid YAML) document from path
// into v. Unknown fields are rejected so typos do not silently score as zero.
// A path of "-" reads from stdin.
func decodeFile(path string, stdin io.Reader, v any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode %s: empty document", path)
		}
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
