package core

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("vehicle locks", func() {
	var tracker *Tracker

	BeforeEach(func() {
		tracker = NewTracker(nil, nil, nil, nil, nil, nil, 0)
	})

	It("evicts the entry once the last holder unlocks", func() {
		unlock := tracker.lockVehicle("vehicle-1")
		Expect(tracker.vehicleLocks).To(HaveLen(1))

		unlock()
		Expect(tracker.vehicleLocks).To(BeEmpty())
	})

	It("keeps the entry alive while another holder waits on it", func() {
		first := tracker.lockVehicle("vehicle-1")

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			second := tracker.lockVehicle("vehicle-1")
			second()
		}()

		Eventually(func() int {
			tracker.locksMu.Lock()
			defer tracker.locksMu.Unlock()
			l, ok := tracker.vehicleLocks["vehicle-1"]
			if !ok {
				return 0
			}
			return l.refs
		}).Should(Equal(2))

		first()
		wg.Wait()
		Expect(tracker.vehicleLocks).To(BeEmpty())
	})
})
