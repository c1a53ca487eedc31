package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPrescriptionLabel(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"image", true},
		{"doctorNotePreview", true},
		{"", false},
		{"   ", false},
		{"rx.image", false},
		{"$bad", false},
		{"a$b", false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPrescriptionLabel(tt.label))
		})
	}
}

func TestTransactionPatchValidate(t *testing.T) {
	paid := StatusPaid
	err := TransactionPatch{
		Status:       &paid,
		Prescription: map[string]string{"rx.image": "u", "": "v", "$bad": "w", "image": "ok"},
	}.Validate()

	var v *ValidationError
	require.True(t, errors.As(err, &v), "want validation error, got %v", err)
	fields := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"prescription.", "prescription.$bad", "prescription.rx.image"}, fields)

	assert.NoError(t, TransactionPatch{Prescription: map[string]string{"image": "u", "imagePreview": "p"}}.Validate())
	assert.Error(t, TransactionPatch{}.Validate())

	bogus := PaymentStatus("later")
	assert.Error(t, TransactionPatch{Status: &bogus}.Validate())
}
