// Package guide holds the embedded pages behind "ftag guide" and the
// ftag_guide MCP tool.
package guide

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed *.md
var files embed.FS

// Topic describes one guide page.
type Topic struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Get returns a guide page. An empty name returns the overview page. Names
// are case-insensitive and may carry the command prefix, so "ftag find",
// "FIND" and "find" are the same page.
func Get(name string) (string, error) {
	data, err := files.ReadFile(normalise(name) + ".md")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the topic names, excluding the overview page.
func List() ([]string, error) {
	topics, err := Topics()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names, nil
}

// Topics returns every topic with the title from its first heading.
func Topics() ([]Topic, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "guide" {
			continue
		}
		data, err := files.ReadFile(e.Name())
		if err != nil {
			return nil, err
		}
		topics = append(topics, Topic{Name: name, Title: title(string(data))})
	}
	return topics, nil
}

func normalise(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSpace(strings.TrimPrefix(name, "ftag"))
	if name == "" {
		return "guide"
	}
	return name
}

func title(page string) string {
	sc := bufio.NewScanner(strings.NewReader(page))
	for sc.Scan() {
		if h, ok := strings.CutPrefix(sc.Text(), "# "); ok {
			return h
		}
	}
	return ""
}
