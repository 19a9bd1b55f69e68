package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_Metadata(t *testing.T) {
	log := &AuditLog{}
	assert.Equal(t, "fallback", log.GetMetadata("account_name", "fallback"))

	log.SetMetadata("account_name", "Salary")
	log.SetMetadata("is_default", true)

	assert.Equal(t, "Salary", log.GetMetadata("account_name", ""))
	assert.Equal(t, true, log.GetMetadata("is_default", false))
	assert.Equal(t, "none", log.GetMetadata("missing", "none"))
}

func TestAuditLog_String(t *testing.T) {
	userID := uuid.New()
	log := &AuditLog{
		UserID:        &userID,
		Action:        AuditActionAccountCreated,
		Resource:      AuditResourceAccount,
		ResourceID:    "acc-123",
		CorrelationID: "trace-1",
	}

	str := log.String()
	assert.Contains(t, str, userID.String())
	assert.Contains(t, str, "account_created")
	assert.Contains(t, str, "account/acc-123")
	assert.Contains(t, str, "trace-1")

	assert.Contains(t, (&AuditLog{}).String(), "anonymous")
}

func TestJSONBMap_ValueAndScan(t *testing.T) {
	empty := JSONBMap{}
	value, err := empty.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	m := JSONBMap{"balance": "10.50"}
	value, err = m.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"balance":"10.50"}`, value)

	var scanned JSONBMap
	require.NoError(t, scanned.Scan([]byte(`{"balance":"10.50"}`)))
	assert.Equal(t, "10.50", scanned["balance"])

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)

	assert.Error(t, scanned.Scan(42))
}

func TestJSONBMap_JSON(t *testing.T) {
	var nilMap JSONBMap
	data, err := nilMap.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var decoded JSONBMap
	require.NoError(t, decoded.UnmarshalJSON([]byte(`{"type":"SAVINGS"}`)))
	assert.Equal(t, "SAVINGS", decoded["type"])
}
