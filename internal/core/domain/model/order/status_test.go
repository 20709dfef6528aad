package order_test

import (
	"fmt"
	"testing"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should parse wire values case-insensitively", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":    order.Pending,
			"Accepted":   order.Accepted,
			" declined ": order.Declined,
			"COMPLETED":  order.Completed,
		}

		for input, expected := range cases {
			status, err := order.ParseStatus(input)

			require.NoError(t, err, input)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "in-progress", "done"} {
			status, err := order.ParseStatus(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
			assert.Equal(t, order.Unknown, status)
		}
	})

	t.Run("String round-trips through ParseStatus", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Accepted, order.Declined, order.Completed} {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(5)} {
		t.Run(fmt.Sprintf("should reject %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		})
	}

	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_Transitions(t *testing.T) {
	all := []order.Status{order.Pending, order.Accepted, order.Declined, order.Completed}

	cases := []struct {
		name    string
		apply   func(order.Status) (order.Status, error)
		allowed map[order.Status]order.Status
	}{
		{
			name:    "accept",
			apply:   order.Status.Accept,
			allowed: map[order.Status]order.Status{order.Pending: order.Accepted, order.Declined: order.Accepted},
		},
		{
			name:    "decline",
			apply:   order.Status.Decline,
			allowed: map[order.Status]order.Status{order.Pending: order.Declined},
		},
		{
			name:    "complete",
			apply:   order.Status.Complete,
			allowed: map[order.Status]order.Status{order.Pending: order.Completed, order.Accepted: order.Completed},
		},
		{
			name:    "reopen",
			apply:   order.Status.Reopen,
			allowed: map[order.Status]order.Status{order.Completed: order.Accepted},
		},
	}

	for _, tc := range cases {
		for _, from := range all {
			t.Run(fmt.Sprintf("%s from %s", tc.name, from), func(t *testing.T) {
				next, err := tc.apply(from)

				if expected, ok := tc.allowed[from]; ok {
					require.NoError(t, err)
					assert.Equal(t, expected, next)
					return
				}
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), "cannot "+tc.name)
				assert.Equal(t, order.Unknown, next)
			})
		}
	}

	t.Run("reassign only while accepted", func(t *testing.T) {
		for _, from := range all {
			err := from.ValidateReassign()
			if from == order.Accepted {
				require.NoError(t, err)
				continue
			}
			require.Error(t, err)
		}
	})
}
