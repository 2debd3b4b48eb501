package memory_test

import (
	"testing"

	"github.com/resultflow/careflow/pkg/adapters/memory"
	"github.com/resultflow/careflow/pkg/ports"
)

func TestStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, memory.NewStore())
}
