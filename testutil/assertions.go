package testutil

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func RequireEqualHexBytes(t *testing.T, exp string, act []byte) {
	require.Equal(t, exp, hex.EncodeToString(act))
}

func RequireEqualJSON(t *testing.T, exp string, actRaw interface{}) {
	var expObj interface{}
	require.NoError(t, json.Unmarshal([]byte(exp), &expObj))

	actJ, err := json.Marshal(actRaw)
	require.NoError(t, err)
	var actObj interface{}
	require.NoError(t, json.Unmarshal(actJ, &actObj))
	require.Equal(t, expObj, actObj)
}
