package wordlist

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticList 生成一份 2048 个不重复单词的合成词表
func syntheticList() []byte {
	var b strings.Builder
	for i := 0; i < Size; i++ {
		fmt.Fprintf(&b, "word%04d\n", i)
	}
	return []byte(b.String())
}

func TestBuiltin(t *testing.T) {
	builtin := Builtin()

	names := builtin.Names()
	assert.Len(t, names, 9)
	assert.Contains(t, names, "english")
	assert.Contains(t, names, "japanese")
	assert.NotContains(t, names, "russian") // 内置数据不含俄语

	list, err := builtin.Words("english")
	require.NoError(t, err)
	assert.Len(t, list, Size)
	assert.Equal(t, "abandon", list[0])

	_, err = builtin.Words("klingon")
	assert.True(t, errors.Is(err, ErrNotFound), "实际错误: %v", err)
}

func TestDir(t *testing.T) {
	fsys := fstest.MapFS{
		"russian.txt": &fstest.MapFile{Data: syntheticList()},
		"notes.md":    &fstest.MapFile{Data: []byte("not a wordlist")},
	}
	dir := NewDirFS(fsys)

	assert.Equal(t, []string{"russian"}, dir.Names())

	list, err := dir.Words("russian")
	require.NoError(t, err)
	assert.Len(t, list, Size)
	assert.Equal(t, "word0000", list[0])

	_, err = dir.Words("turkish")
	assert.True(t, errors.Is(err, ErrNotFound), "实际错误: %v", err)
}

func TestRegistry_Composition(t *testing.T) {
	fsys := fstest.MapFS{
		"russian.txt": &fstest.MapFile{Data: syntheticList()},
		"english.txt": &fstest.MapFile{Data: syntheticList()},
	}
	// 目录 Provider 在前，覆盖内置英语词表
	registry := NewRegistry(NewDirFS(fsys), Builtin())

	available := registry.Available()
	assert.Contains(t, available, "russian")
	assert.Contains(t, available, "japanese")

	english, err := registry.Words("english")
	require.NoError(t, err)
	assert.Equal(t, "word0000", english[0], "目录词表应当覆盖内置词表")

	// 目录没有的语言回落到内置数据
	czech, err := registry.Words("czech")
	require.NoError(t, err)
	assert.Len(t, czech, Size)
}

func TestRegistry_InvalidLength(t *testing.T) {
	fsys := fstest.MapFS{
		"english.txt": &fstest.MapFile{Data: []byte("abandon\nability\n")},
	}
	registry := NewRegistry(NewDirFS(fsys))

	_, err := registry.Words("english")
	assert.True(t, errors.Is(err, ErrInvalidLength), "实际错误: %v", err)
}

func TestRegistry_NotFound(t *testing.T) {
	registry := Default()
	_, err := registry.Words("russian")
	assert.True(t, errors.Is(err, ErrNotFound), "实际错误: %v", err)
}

func TestRegistry_Cache(t *testing.T) {
	registry := Default()

	first, err := registry.Words("english")
	require.NoError(t, err)
	second, err := registry.Words("english")
	require.NoError(t, err)

	// 缓存返回同一份数据
	assert.Equal(t, first, second)
}
