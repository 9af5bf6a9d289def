package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanshub/roastery-api/internal/domain/entity"
)

func TestStore_DispatchNotificaSuscriptores(t *testing.T) {
	store := NewStore()

	var got []AppState
	unsub := store.Subscribe(func(s AppState) { got = append(got, s) })
	defer unsub()

	u := testUser("u1", entity.RoleStaff)
	store.Dispatch(SetUser{User: &u})
	store.Dispatch(SetAuthLoading{Loading: false})

	require.Len(t, got, 2)
	require.NotNil(t, got[0].CurrentUser)
	assert.Equal(t, "u1", got[0].CurrentUser.ID)
	assert.False(t, got[1].AuthLoading)
	assert.Equal(t, store.State(), got[1])
}

// La baja es exactamente-una-vez: tras Unsubscribe no llegan más estados y
// llamarla de nuevo es inocuo.
func TestStore_UnsubscribeDetieneNotificaciones(t *testing.T) {
	store := NewStore()

	calls := 0
	unsub := store.Subscribe(func(AppState) { calls++ })

	store.Dispatch(SetAuthLoading{Loading: false})
	unsub()
	unsub() // segunda llamada: no-op
	store.Dispatch(SetAuthLoading{Loading: true})

	assert.Equal(t, 1, calls)
}

// Despachos concurrentes se aplican uno a uno; el resultado agregado es el
// mismo que el de una aplicación secuencial.
func TestStore_DispatchConcurrenteEsSecuencial(t *testing.T) {
	store := NewStore()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			store.Dispatch(AddNotification{Notification: entity.Notification{ID: string(rune('a' + i%26))}})
		}()
	}
	wg.Wait()

	assert.Len(t, store.State().Notifications, n)
}
