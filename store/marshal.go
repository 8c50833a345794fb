package store

import "gopkg.in/yaml.v3"

// Marshal encodes a Document as YAML.
func Marshal(d *Document) ([]byte, error) {
	return yaml.Marshal(d)
}

// Unmarshal decodes a Document from YAML and migrates it to
// CurrentVersion.
func Unmarshal(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if err := Migrate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}
