package game

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadHighScore reads the high score stored at path. A missing file is not
// an error and reads as 0.
func LoadHighScore(path string) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("open high score: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("read high score: %w", err)
		}
		return 0, nil
	}
	text := strings.TrimSpace(scanner.Text())
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("parse high score %q: %w", text, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("high score must be non-negative, got %d", n)
	}
	return n, nil
}

// SaveHighScore writes score to path as a decimal number. The file is
// replaced atomically so a crash never leaves it half written.
func SaveHighScore(path string, score int) error {
	if score < 0 {
		return errors.New("score must be non-negative")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
