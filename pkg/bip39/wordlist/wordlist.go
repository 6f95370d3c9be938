// Package wordlist 负责按语言提供 BIP-39 词表。
// 词表本身是外部资源：内置数据来自 tyler-smith/go-bip39，
// 缺失的语言可以从目录中按规范名称加载。
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"
)

// Size 是 BIP-39 词表的固定长度 (2^11)。
const Size = 2048

var (
	// ErrNotFound 表示请求的语言没有对应的词表资源。
	ErrNotFound = errors.New("wordlist resource not found")
	// ErrUnreadable 表示词表资源存在但无法读取。
	ErrUnreadable = errors.New("wordlist resource unreadable")
	// ErrInvalidLength 表示词表不是恰好 2048 个单词。
	ErrInvalidLength = errors.New("wordlist must contain exactly 2048 words")
)

// Provider 按语言的规范名称（如 "english"、"chinese_simplified"）提供词表。
// 返回的词表不保证长度合法，长度校验由 Registry 统一完成。
type Provider interface {
	// Words 返回该语言的词表；资源缺失返回 ErrNotFound，损坏返回 ErrUnreadable。
	Words(name string) ([]string, error)
	// Names 返回该 Provider 能够提供的语言规范名称。
	Names() []string
}

// builtin 使用 tyler-smith/go-bip39 内置的词表数据。
type builtin struct {
	lists map[string][]string
}

// Builtin 返回内置词表 Provider。
// 覆盖九种语言；葡萄牙语、俄语、土耳其语需要通过 Dir Provider 提供。
func Builtin() Provider {
	return &builtin{lists: map[string][]string{
		"english":             wordlists.English,
		"chinese_simplified":  wordlists.ChineseSimplified,
		"chinese_traditional": wordlists.ChineseTraditional,
		"czech":               wordlists.Czech,
		"french":              wordlists.French,
		"italian":             wordlists.Italian,
		"japanese":            wordlists.Japanese,
		"korean":              wordlists.Korean,
		"spanish":             wordlists.Spanish,
	}}
}

func (b *builtin) Words(name string) ([]string, error) {
	list, ok := b.lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return list, nil
}

func (b *builtin) Names() []string {
	names := make([]string, 0, len(b.lists))
	for name := range b.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dir 从文件系统目录加载词表，文件名为 "<规范名称>.txt"，每行一个单词。
type Dir struct {
	fsys fs.FS
}

// NewDir 返回读取指定目录的 Provider。
func NewDir(path string) *Dir {
	return &Dir{fsys: os.DirFS(path)}
}

// NewDirFS 返回读取给定 fs.FS 的 Provider，测试时可传入内存文件系统。
func NewDirFS(fsys fs.FS) *Dir {
	return &Dir{fsys: fsys}
}

func (d *Dir) Words(name string) ([]string, error) {
	f, err := d.fsys.Open(name + ".txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, name, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, name, err)
	}
	return words, nil
}

func (d *Dir) Names() []string {
	entries, err := fs.Glob(d.fsys, "*.txt")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry, ".txt"))
	}
	sort.Strings(names)
	return names
}

// Registry 组合多个 Provider 并缓存校验过的词表。
// 排在前面的 Provider 优先，因此目录 Provider 放在内置 Provider
// 之前即可覆盖内置数据。所有方法并发安全。
type Registry struct {
	providers []Provider

	mu    sync.RWMutex
	cache map[string][]string
}

// NewRegistry 按优先级组合 Provider。
func NewRegistry(providers ...Provider) *Registry {
	return &Registry{
		providers: providers,
		cache:     make(map[string][]string),
	}
}

// Default 返回只包含内置词表的 Registry。
func Default() *Registry {
	return NewRegistry(Builtin())
}

// Words 返回指定语言的词表。词表在首次加载时校验长度并做 NFKD 归一化，
// 之后从缓存返回同一份数据。调用方不得修改返回的切片。
func (r *Registry) Words(name string) ([]string, error) {
	r.mu.RLock()
	cached, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	for _, p := range r.providers {
		list, err := p.Words(name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		if len(list) != Size {
			return nil, fmt.Errorf("%w: %s has %d", ErrInvalidLength, name, len(list))
		}
		normalized := make([]string, Size)
		for i, word := range list {
			normalized[i] = norm.NFKD.String(word)
		}
		r.mu.Lock()
		r.cache[name] = normalized
		r.mu.Unlock()
		return normalized, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Available 返回所有 Provider 能提供的语言名称（去重，按 Provider 顺序）。
func (r *Registry) Available() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range r.providers {
		for _, name := range p.Names() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
