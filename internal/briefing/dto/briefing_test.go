package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-briefing/internal/entity"
)

func TestChannelSpecRequest_ToEntity(t *testing.T) {
	spec, err := ChannelSpecRequest{Kind: "email", Address: "a@example.com"}.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, entity.ChannelEmail, spec.Kind)
	assert.Equal(t, "a@example.com", spec.Address)

	_, err = ChannelSpecRequest{Kind: "email"}.ToEntity()
	assert.Error(t, err)

	_, err = ChannelSpecRequest{Kind: "chat", Room: "#alerts"}.ToEntity()
	assert.Error(t, err)

	_, err = ChannelSpecRequest{Kind: "pigeon", Address: "roof"}.ToEntity()
	assert.Error(t, err)

	spec, err = ChannelSpecRequest{Kind: "telegram"}.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, entity.ChannelTelegram, spec.Kind)
}

func TestRunFilter_NormalizeAndOffset(t *testing.T) {
	filter := &RunFilter{}
	filter.Normalize()
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, 0, filter.Offset())

	filter = &RunFilter{Page: 3, Limit: 500}
	filter.Normalize()
	assert.Equal(t, 100, filter.Limit)
	assert.Equal(t, 200, filter.Offset())

	filter = &RunFilter{Page: -2, Limit: -1}
	filter.Normalize()
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.Limit)
}
