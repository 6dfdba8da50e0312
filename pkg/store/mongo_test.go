package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestMongoErrTranslation(t *testing.T) {
	opaque := errors.New("boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passthrough", nil, nil},
		{"no documents", mongo.ErrNoDocuments, ErrNotFound},
		{"wrapped no documents", fmt.Errorf("find: %w", mongo.ErrNoDocuments), ErrNotFound},
		{"context deadline", context.DeadlineExceeded, ErrUnavailable},
		{"driver timeout", mongo.CommandError{Code: 50, Name: "MaxTimeMSExpired"}, ErrUnavailable},
		{"other errors passthrough", opaque, opaque},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mongoErr(tc.in)
			if !errors.Is(got, tc.want) && got != tc.want {
				t.Errorf("mongoErr(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
