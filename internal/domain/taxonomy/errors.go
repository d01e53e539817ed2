package taxonomy

import "fmt"

// MappingGapError indica que o nível calculado de um filho não existe no categoryLevelMapping.
type MappingGapError struct {
	Level int
}

func (e *MappingGapError) Error() string {
	return fmt.Sprintf("taxonomy: no attribute type mapped for level %d", e.Level)
}

type MappingError struct {
	Level  int
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("taxonomy: invalid mapping at level %d: %s", e.Level, e.Reason)
}

type DepthError struct {
	Depth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("taxonomy: depth %d outside %d..%d", e.Depth, MinDepth, MaxDepth)
}

type PlacementError struct {
	Level  int
	Reason string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("taxonomy: invalid placement at level %d: %s", e.Level, e.Reason)
}
