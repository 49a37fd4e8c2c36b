package converter

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/internal/transport/http/dto"
)

func TestUpdateRequestToPatchMileage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantClear bool
		wantValue *int64
	}{
		{name: "absent keeps", body: `{"notes":"x"}`},
		{name: "null clears", body: `{"mileage":null}`, wantClear: true},
		{name: "value sets", body: `{"mileage":42000}`, wantValue: lo.ToPtr(int64(42000))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req dto.UpdatePartRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			patch := UpdateRequestToPatch(req)
			assert.Equal(t, tt.wantClear, patch.ClearMileage)
			assert.Equal(t, tt.wantValue, patch.Mileage)
		})
	}
}

func TestUpdateRequestToPatchEnums(t *testing.T) {
	t.Parallel()

	var req dto.UpdatePartRequest
	require.NoError(t, json.Unmarshal([]byte(`{"category":"body","stockStatus":"On Hold"}`), &req))

	patch := UpdateRequestToPatch(req)
	require.NotNil(t, patch.Category)
	require.NotNil(t, patch.StockStatus)
	assert.Equal(t, model.CategoryBody, *patch.Category)
	assert.Equal(t, model.StatusOnHold, *patch.StockStatus)
	assert.Nil(t, patch.Condition)
}

func TestPartToPublicDTOHidesStaffFields(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(PartToPublicDTO(&model.Part{
		ID:           "p1",
		VIN:          "1FTFW1ET5DFC10312",
		YardLocation: "Row A",
		AddedBy:      "Greg",
	}))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.NotContains(t, out, "vin")
	assert.NotContains(t, out, "yardLocation")
	assert.NotContains(t, out, "addedBy")
	assert.Equal(t, []any{}, out["photos"])
}
