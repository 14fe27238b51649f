package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "indexes"}, names)

	serve, _, err := root.Find([]string{"serve", "--port", "4000"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())
	assert.NotNil(t, root.PersistentFlags().Lookup("port"))
	assert.NotNil(t, root.PersistentFlags().Lookup("store"))
}
