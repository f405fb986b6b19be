package util_test

import (
	"testing"

	"github.com/filesmanager/image-upload/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestPrettyJSON(t *testing.T) {
	require.Equal(t, "{\n  \"id\": \"1\",\n  \"tags\": [\n    \"a\"\n  ]\n}", util.PrettyJSON([]byte(`{"id":"1","tags":["a"]}`)))
	require.Equal(t, "not json", util.PrettyJSON([]byte("not json")))
}
