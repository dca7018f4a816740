package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountLocks_SerializesSameAccount(t *testing.T) {
	locks := newAccountLocks()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("acc-1")
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, locks.size())
}

func TestAccountLocks_IndependentAccounts(t *testing.T) {
	locks := newAccountLocks()
	unlockA := locks.Lock("a")
	unlockB := locks.Lock("b") // would deadlock if keys shared a mutex
	assert.Equal(t, 2, locks.size())
	unlockB()
	unlockA()
	assert.Equal(t, 0, locks.size())
}
