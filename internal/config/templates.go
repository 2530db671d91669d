package config

import (
	"fmt"
	"os"
)

const clientTemplate = `# enablectl client defaults
tag = "A001"

# Used when enablectl encode is given no capabilities.
# UTF8=ACCEPT and UTF8=ONLY are always written in that canonical spelling.
capabilities = ["UTF8=ACCEPT"]

# Require every capability to be a non-UTF8 name.
strict = false
`

func Template() string {
	return clientTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(clientTemplate), 0o600)
}
