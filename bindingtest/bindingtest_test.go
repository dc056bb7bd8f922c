package bindingtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunBindingTests(t *testing.T) {
	RunBindingTests(t, DefaultFactory, []TestCase{
		{
			Name:  "greet delivers one alert",
			Input: "Harness",
			Validate: func(t *testing.T, rec *Recording, err error) {
				assert.NoError(t, err)
				AssertAlerted(t, rec, "Hello, Harness!")
				assert.Empty(t, rec.Logs)
			},
		},
		{
			Name:  "greet empty name",
			Input: "",
			Validate: func(t *testing.T, rec *Recording, err error) {
				assert.NoError(t, err)
				AssertAlerted(t, rec, "Hello, !")
			},
		},
		{
			Name: "main delivers one log message",
			Main: true,
			Validate: func(t *testing.T, rec *Recording, err error) {
				assert.NoError(t, err)
				AssertLogged(t, rec, "Hello, world!")
				assert.Empty(t, rec.Alerts)
			},
		},
	})
}

func TestAssertNothingDelivered(t *testing.T) {
	AssertNothingDelivered(t, &Recording{})
}
