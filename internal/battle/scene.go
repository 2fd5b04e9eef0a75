package battle

import (
	"fmt"
	"sort"
	"strings"
)

// SceneFormat describes a data file made of battle structures stored back to
// back with no header.
type SceneFormat struct {
	Name    string
	Records int
}

// Size returns the exact length a file of this format must have.
func (f SceneFormat) Size() int {
	return f.Records * RecordSize
}

// SceneOut is the scene.out file shipped with the PC release.
var SceneOut = SceneFormat{Name: "scene.out", Records: 1024}

var sceneFormats = map[string]SceneFormat{
	SceneOut.Name: SceneOut,
}

// LookupSceneFormat returns the known format called name.
func LookupSceneFormat(name string) (SceneFormat, error) {
	f, ok := sceneFormats[strings.ToLower(name)]
	if !ok {
		return SceneFormat{}, fmt.Errorf("unknown scene format %q (known: %s)",
			name, strings.Join(SceneFormatNames(), ", "))
	}
	return f, nil
}

// SceneFormatNames lists the names of the known formats.
func SceneFormatNames() []string {
	names := make([]string, 0, len(sceneFormats))
	for name := range sceneFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeMany decodes count consecutive battle structures. b must be exactly
// count*RecordSize bytes long. If any record fails to decode, no structures
// are returned.
func DecodeMany(b []byte, count int) ([]BattleStructure, error) {
	if count < 0 || len(b) != count*RecordSize {
		return nil, &SizeError{What: "scene length", Expected: count * RecordSize, Actual: len(b)}
	}

	structures := make([]BattleStructure, count)
	for i := range structures {
		offset := i * RecordSize
		bs, err := DecodeOne(b[offset : offset+RecordSize])
		if err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		structures[i] = bs
	}
	return structures, nil
}

// EncodeMany concatenates the on-disk form of exactly count structures, in
// order. If any structure fails to encode, no bytes are returned.
func EncodeMany(structures []BattleStructure, count int) ([]byte, error) {
	if len(structures) != count {
		return nil, &SizeError{What: "structure count", Expected: count, Actual: len(structures)}
	}

	b := make([]byte, 0, count*RecordSize)
	for i, bs := range structures {
		encoded, err := EncodeOne(bs)
		if err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		b = append(b, encoded...)
	}
	return b, nil
}
