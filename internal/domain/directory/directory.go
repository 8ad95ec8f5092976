package directory

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

var (
	ErrManagerNotListed = errors.New("manager is not listed in the directory")
	ErrEmptyDirectory   = errors.New("manager directory is empty")
	ErrDuplicateManager = errors.New("manager listed more than once")
)

// DefaultLoginDomain is appended to slugified names when a login is derived.
const DefaultLoginDomain = "ajusteponto.local"

// Entry maps a manager's display name to the technical login used at sign-in.
type Entry struct {
	Name  string `yaml:"name"`
	Login string `yaml:"login"`
}

// Directory is an immutable, ordered name-to-login lookup table.
type Directory struct {
	entries []Entry
	byName  map[string]string
}

// New builds a directory from entries, keeping their order.
func New(entries []Entry) (*Directory, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyDirectory
	}
	d := &Directory{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		login := strings.TrimSpace(e.Login)
		if name == "" || login == "" {
			return nil, fmt.Errorf("directory entry %q: name and login are required", e.Name)
		}
		if _, exists := d.byName[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateManager, name)
		}
		d.byName[name] = login
		d.entries = append(d.entries, Entry{Name: name, Login: login})
	}
	return d, nil
}

// Lookup resolves a display name, matched exactly, to its login.
func (d *Directory) Lookup(name string) (string, error) {
	login, ok := d.byName[name]
	if !ok {
		return "", ErrManagerNotListed
	}
	return login, nil
}

// Names returns display names in directory order.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		names = append(names, e.Name)
	}
	return names
}

func (d *Directory) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Directory) Len() int {
	return len(d.entries)
}

type fileFormat struct {
	LoginDomain string  `yaml:"login_domain"`
	Managers    []Entry `yaml:"managers"`
}

// LoadYAML reads a directory file. Entries without a login get one derived
// from their name and the file's login_domain.
func LoadYAML(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manager directory: %w", err)
	}
	return ParseYAML(data)
}

func ParseYAML(data []byte) (*Directory, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse manager directory: %w", err)
	}
	domain := f.LoginDomain
	if domain == "" {
		domain = DefaultLoginDomain
	}
	for i := range f.Managers {
		if strings.TrimSpace(f.Managers[i].Login) == "" {
			f.Managers[i].Login = DeriveLogin(f.Managers[i].Name, domain)
		}
	}
	return New(f.Managers)
}

// DeriveLogin turns "Rômulo Lisboa" into "romulo-lisboa@<domain>".
func DeriveLogin(name, domain string) string {
	return Slugify(name) + "@" + domain
}

// Slugify lowercases name, strips accents and joins the remaining
// alphanumeric runs with single hyphens.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(plain) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
