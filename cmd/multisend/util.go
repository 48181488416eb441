package multisend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/joho/godotenv"

	"github.com/smartcontractkit/multisend"
)

func loadBatchFile(path string) (*multisend.BatchFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := multisend.NewBatchFile(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch file %s: %w", path, err)
	}

	return file, nil
}

// loadEnv returns the process environment merged with the .env file at path. Variables already
// set in the environment win. A missing .env file is not an error.
func loadEnv(path string) (map[string]string, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok {
			env[key] = value
		}
	}

	return env, nil
}

func decodeHexArg(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}

	return hexutil.Decode(s)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
