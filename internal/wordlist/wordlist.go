package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadWords reads one word per line from path. Blank lines and lines starting
// with '#' are skipped.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty: %s", path)
	}
	return words, nil
}

// LoadTiers builds tiers whose base set comes from the file at path, filtered
// for lang. Medium and hard extras are the built-in ones.
func LoadTiers(path, lang string) (Tiers, error) {
	words, err := LoadWords(path)
	if err != nil {
		return Tiers{}, err
	}
	kept := Filter(words, FilterForLang(lang))
	if len(kept) == 0 {
		return Tiers{}, fmt.Errorf("no usable words in %s", path)
	}
	return DefaultTiers().WithBase(kept), nil
}
