package taxonomy

import "fmt"

// Placement descreve onde um nó está na taxonomia. As variantes são SectorPlacement (nível 1),
// SubCategoryPlacement (nível 2) e AttributePlacement (níveis 3..7, sempre com tipo).
type Placement interface {
	Level() int
	placement()
}

type SectorPlacement struct{}

func (SectorPlacement) Level() int { return SectorLevel }
func (SectorPlacement) placement() {}

type SubCategoryPlacement struct{}

func (SubCategoryPlacement) Level() int { return SubCategoryLevel }
func (SubCategoryPlacement) placement() {}

type AttributePlacement struct {
	Depth int
	Type  AttributeType
}

func (p AttributePlacement) Level() int { return p.Depth }
func (AttributePlacement) placement() {}

// NewPlacement monta a variante correta a partir dos campos persistidos (level, attributeType).
func NewPlacement(level int, attr *AttributeType) (Placement, error) {
	switch {
	case level == SectorLevel || level == SubCategoryLevel:
		if attr != nil && *attr != "" {
			return nil, &PlacementError{Level: level, Reason: "attribute type not allowed"}
		}
		if level == SectorLevel {
			return SectorPlacement{}, nil
		}
		return SubCategoryPlacement{}, nil
	case level >= MinDepth && level <= MaxDepth:
		if attr == nil || *attr == "" {
			return nil, &PlacementError{Level: level, Reason: "attribute type required"}
		}
		if !attr.IsValid() {
			return nil, &PlacementError{Level: level, Reason: fmt.Sprintf("unknown attribute type %q", *attr)}
		}
		return AttributePlacement{Depth: level, Type: *attr}, nil
	default:
		return nil, &PlacementError{Level: level, Reason: fmt.Sprintf("level outside %d..%d", SectorLevel, MaxDepth)}
	}
}

// AttributeOf devolve o tipo de atributo da posição, quando houver.
func AttributeOf(p Placement) (AttributeType, bool) {
	if ap, ok := p.(AttributePlacement); ok {
		return ap.Type, true
	}
	return "", false
}

// AttributePtr é o formato usado nas entidades persistidas (nil para níveis 1 e 2).
func AttributePtr(p Placement) *AttributeType {
	if attr, ok := AttributeOf(p); ok {
		return &attr
	}
	return nil
}

// ChildPlacement calcula nível e tipo de um filho a partir do pai e do mapeamento da categoria.
func ChildPlacement(parent Placement, mapping LevelMapping) (Placement, error) {
	level := parent.Level() + 1
	if level == SubCategoryLevel {
		return SubCategoryPlacement{}, nil
	}
	if level > MaxDepth {
		return nil, &MappingGapError{Level: level}
	}

	attr, ok := mapping.Lookup(level)
	if !ok {
		return nil, &MappingGapError{Level: level}
	}
	return AttributePlacement{Depth: level, Type: attr}, nil
}

// Conforms verifica se uma posição persistida bate com o mapeamento atual da categoria.
func Conforms(p Placement, mapping LevelMapping) error {
	ap, ok := p.(AttributePlacement)
	if !ok {
		return nil
	}
	want, found := mapping.Lookup(ap.Depth)
	if !found {
		return &MappingGapError{Level: ap.Depth}
	}
	if want != ap.Type {
		return &PlacementError{Level: ap.Depth, Reason: fmt.Sprintf("expected %s, got %s", want, ap.Type)}
	}
	return nil
}
