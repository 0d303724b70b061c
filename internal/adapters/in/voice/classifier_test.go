package voice_test

import (
	"testing"

	"porter/internal/adapters/in/voice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify(t *testing.T) {
	c := voice.NewClassifier()

	t.Run("should resolve phrases of every default rule", func(t *testing.T) {
		for utterance, want := range map[string]voice.Token{
			"Accept order please":          voice.AcceptOrder,
			"I'll accept delivery":         voice.AcceptOrder,
			"reject order":                 voice.DeclineOrder,
			"Package collected":            voice.MarkPickedUp,
			"I'm  ON   my way":             voice.MarkInTransit,
			"delivery complete":            voice.MarkDelivered,
			"the order has been delivered": voice.MarkDelivered,
			"start working":                voice.GoOnline,
			"GO OFFLINE":                   voice.GoOffline,
			"what are my earnings":         voice.ShowEarnings,
			"show orders":                  voice.ShowOrders,
			"emergency!":                   voice.SOS,
		} {
			token, err := c.Classify(utterance)

			require.NoError(t, err, utterance)
			assert.Equal(t, want, token, utterance)
		}
	})

	t.Run("should prefer the earlier rule when several match", func(t *testing.T) {
		token, err := c.Classify("picked up and delivered")

		require.NoError(t, err)
		assert.Equal(t, voice.MarkPickedUp, token)
	})

	t.Run("should reject an unknown or empty utterance", func(t *testing.T) {
		_, err := c.Classify("what's the weather")
		require.ErrorIs(t, err, voice.ErrUnrecognized)

		_, err = c.Classify("   ")
		require.ErrorIs(t, err, voice.ErrUnrecognized)
	})

	t.Run("should use custom rules", func(t *testing.T) {
		custom := voice.NewClassifierWithRules([]voice.Rule{
			{Token: voice.GoOnline, Phrases: []string{"  Let's   Go "}},
		})

		token, err := custom.Classify("ok let's go")

		require.NoError(t, err)
		assert.Equal(t, voice.GoOnline, token)

		_, err = custom.Classify("go online")
		require.ErrorIs(t, err, voice.ErrUnrecognized)
	})
}
