package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBidResultParticipants(t *testing.T) {
	tests := []struct {
		name       string
		bid        BidResult
		want       int
		sittingOut []Position
	}{
		{"no one called", NoBid(), 0, nil},
		{"called", CalledBy(Hearts, North), 4, nil},
		{"called alone", CalledAloneBy(Hearts, North), 3, []Position{South}},
		{"defended alone", DefendedAloneBy(Hearts, North, East), 2, []Position{South, West}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bid.Participants())
			var out []Position
			for _, p := range Positions {
				if tt.bid.SittingOut(p) {
					out = append(out, p)
				}
			}
			assert.ElementsMatch(t, tt.sittingOut, out)
		})
	}
}

func TestBidResultJSON(t *testing.T) {
	bid := DefendedAloneBy(Clubs, West, North)

	data, err := json.Marshal(bid)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"defended_alone","trump":"clubs","caller":"west","defender":"north"}`, string(data))

	var back BidResult
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, bid, back)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"misdeal"}`), &back))
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"defended_alone","trump":"clubs","caller":"west"}`), &back))
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"called"}`), &back))
}

func TestBidResultJSONOmitsUnusedFields(t *testing.T) {
	tests := []struct {
		bid  BidResult
		want string
	}{
		{NoBid(), `{"kind":"no_one_called"}`},
		{CalledBy(Hearts, South), `{"kind":"called","trump":"hearts","caller":"south"}`},
		{CalledAloneBy(Spades, West), `{"kind":"called_alone","trump":"spades","caller":"west"}`},
	}
	for _, tt := range tests {
		t.Run(tt.bid.String(), func(t *testing.T) {
			data, err := json.Marshal(tt.bid)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var back BidResult
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.bid, back)
		})
	}
}

func TestBidResultString(t *testing.T) {
	assert.Equal(t, "no one called", NoBid().String())
	assert.Equal(t, "south called spades alone", CalledAloneBy(Spades, South).String())
}
