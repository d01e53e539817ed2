package taxonomy

import (
	"fmt"
	"sort"
)

type AttributeType string

const (
	AttributeServiceType AttributeType = "serviceType"
	AttributeSize        AttributeType = "size"
	AttributeFrequency   AttributeType = "frequency"
	AttributeMake        AttributeType = "make"
	AttributeModel       AttributeType = "model"
	AttributeBrand       AttributeType = "brand"
)

// AttributeTypes é a enumeração fixa, na ordem usada para preencher níveis novos.
var AttributeTypes = []AttributeType{
	AttributeServiceType,
	AttributeSize,
	AttributeFrequency,
	AttributeMake,
	AttributeModel,
	AttributeBrand,
}

const (
	SectorLevel      = 1
	SubCategoryLevel = 2
	MinDepth         = 3
	MaxDepth         = 7
)

func (a AttributeType) IsValid() bool {
	for _, t := range AttributeTypes {
		if t == a {
			return true
		}
	}
	return false
}

func ParseAttributeType(s string) (AttributeType, error) {
	a := AttributeType(s)
	if !a.IsValid() {
		return "", fmt.Errorf("taxonomy: unknown attribute type %q", s)
	}
	return a, nil
}

// LevelAttribute associa um nível (3..7) a um tipo de atributo.
type LevelAttribute struct {
	Level         int           `json:"level" yaml:"level"`
	AttributeType AttributeType `json:"attributeType" yaml:"attributeType"`
}

// LevelMapping é o categoryLevelMapping de uma categoria de serviço.
type LevelMapping []LevelAttribute

func (m LevelMapping) Lookup(level int) (AttributeType, bool) {
	for _, e := range m {
		if e.Level == level {
			return e.AttributeType, true
		}
	}
	return "", false
}

func (m LevelMapping) Sorted() LevelMapping {
	out := make(LevelMapping, len(m))
	copy(out, m)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}

// Validate exige exatamente uma entrada por nível 3..depth e nenhum tipo repetido.
func (m LevelMapping) Validate(depth int) error {
	if err := ValidateDepth(depth); err != nil {
		return err
	}

	levels := make(map[int]bool, len(m))
	types := make(map[AttributeType]int, len(m))
	for _, e := range m {
		if e.Level < MinDepth || e.Level > depth {
			return &MappingError{Level: e.Level, Reason: fmt.Sprintf("level outside 3..%d", depth)}
		}
		if !e.AttributeType.IsValid() {
			return &MappingError{Level: e.Level, Reason: fmt.Sprintf("unknown attribute type %q", e.AttributeType)}
		}
		if levels[e.Level] {
			return &MappingError{Level: e.Level, Reason: "level declared twice"}
		}
		if other, ok := types[e.AttributeType]; ok {
			return &MappingError{Level: e.Level, Reason: fmt.Sprintf("attribute type %s already used by level %d", e.AttributeType, other)}
		}
		levels[e.Level] = true
		types[e.AttributeType] = e.Level
	}

	for level := MinDepth; level <= depth; level++ {
		if !levels[level] {
			return &MappingGapError{Level: level}
		}
	}
	return nil
}

// Diff devolve os níveis presentes nos dois mapeamentos cujo tipo mudou.
func (m LevelMapping) Diff(next LevelMapping) map[int]AttributeType {
	changed := make(map[int]AttributeType)
	for _, e := range next {
		if prev, ok := m.Lookup(e.Level); ok && prev != e.AttributeType {
			changed[e.Level] = e.AttributeType
		}
	}
	return changed
}

func ValidateDepth(depth int) error {
	if depth < MinDepth || depth > MaxDepth {
		return &DepthError{Depth: depth}
	}
	return nil
}

// SetDepth ajusta o mapeamento para a profundidade informada: mantém os níveis existentes
// até newDepth, descarta os excedentes e preenche os faltantes com o primeiro tipo livre.
func SetDepth(current LevelMapping, newDepth int) (LevelMapping, error) {
	if err := ValidateDepth(newDepth); err != nil {
		return nil, err
	}

	kept := make(map[int]AttributeType, newDepth)
	used := make(map[AttributeType]bool, len(AttributeTypes))
	for _, e := range current.Sorted() {
		if e.Level < MinDepth || e.Level > newDepth || !e.AttributeType.IsValid() {
			continue
		}
		if _, dup := kept[e.Level]; dup || used[e.AttributeType] {
			continue
		}
		kept[e.Level] = e.AttributeType
		used[e.AttributeType] = true
	}

	out := make(LevelMapping, 0, newDepth-MinDepth+1)
	for level := MinDepth; level <= newDepth; level++ {
		attr, ok := kept[level]
		if !ok {
			attr = firstUnused(used)
			used[attr] = true
		}
		out = append(out, LevelAttribute{Level: level, AttributeType: attr})
	}
	return out, nil
}

func firstUnused(used map[AttributeType]bool) AttributeType {
	for _, t := range AttributeTypes {
		if !used[t] {
			return t
		}
	}
	// MaxDepth-MinDepth+1 < len(AttributeTypes)
	panic("taxonomy: attribute types exhausted")
}
