package hook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/go-ports/memento/internal/config"
)

// LoadBoilerplate reads the static reference document under root.
// A missing file yields "" and no error; every other failure is returned,
// including content that is not valid UTF-8.
func LoadBoilerplate(root string) (string, error) {
	path := config.ReferencePath(root)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", path).Msg("reference document not found")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load boilerplate: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("load boilerplate: %s is not valid UTF-8", path)
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("reference document loaded")
	return string(data), nil
}
