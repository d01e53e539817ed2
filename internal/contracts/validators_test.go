package contracts_test

import (
	"testing"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/contracts"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/taxonomy"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, contracts.Register(v))
	return v
}

func TestCategoryCreateRequest_Validation(t *testing.T) {
	v := newValidator(t)
	sectorID := ulid.Make().String()

	valid := contracts.CategoryCreateRequest{
		SectorID: sectorID,
		Name:     "Car Repair",
		Level:    4,
		LevelMapping: contracts.LevelMappingRequest{
			{Level: 3, AttributeType: "make"},
			{Level: 4, AttributeType: "model"},
		},
	}
	assert.NoError(t, v.Struct(valid))

	badType := valid
	badType.LevelMapping = contracts.LevelMappingRequest{{Level: 3, AttributeType: "color"}}
	assert.Error(t, v.Struct(badType))

	badSector := valid
	badSector.SectorID = "sector-1"
	assert.Error(t, v.Struct(badSector))

	tooDeep := valid
	tooDeep.Level = 8
	assert.Error(t, v.Struct(tooDeep))
}

func TestOrderRequest_Validation(t *testing.T) {
	v := newValidator(t)
	id := ulid.Make().String()

	assert.NoError(t, v.Struct(contracts.OrderRequest{Items: []contracts.OrderItem{{ID: id, Order: 2}}}))
	assert.Error(t, v.Struct(contracts.OrderRequest{}))
	assert.Error(t, v.Struct(contracts.OrderRequest{Items: []contracts.OrderItem{{ID: id, Order: 0}}}))
	assert.Error(t, v.Struct(contracts.OrderRequest{Items: []contracts.OrderItem{{ID: "x", Order: 1}}}))
}

func TestSubCategoryMoveRequest_Validation(t *testing.T) {
	v := newValidator(t)
	zero, two := 0, 2

	req := contracts.SubCategoryMoveRequest{
		CategoryID:  ulid.Make().String(),
		MoveRequest: contracts.MoveRequest{OldIndex: &zero, NewIndex: &two},
	}
	assert.NoError(t, v.Struct(req))

	bad := "parent"
	req.ParentID = &bad
	assert.Error(t, v.Struct(req))

	req.ParentID = nil
	req.NewIndex = nil
	assert.Error(t, v.Struct(req))
}

func TestLevelMappingRequest_Mapping(t *testing.T) {
	assert.Nil(t, contracts.LevelMappingRequest(nil).Mapping())

	got := contracts.LevelMappingRequest{{Level: 3, AttributeType: "size"}}.Mapping()
	assert.Equal(t, taxonomy.LevelMapping{{Level: 3, AttributeType: taxonomy.AttributeSize}}, got)
}
