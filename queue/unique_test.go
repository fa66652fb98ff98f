package queue_test

import (
	"testing"

	"github.com/kdeque/dheap/dheap"
	"github.com/kdeque/dheap/queue"
	"github.com/matryer/is"
)

type person struct {
	name string
	born int
}

func newPeopleQueue(t *testing.T) *queue.Unique[person, int, string] {
	t.Helper()
	q, err := queue.NewUnique[person, int, string](
		func(p person) string { return p.name },
		func(p person) int { return p.born },
		dheap.MinOrdered[int](),
	)
	if err != nil {
		t.Fatalf("NewUnique: %v", err)
	}
	return q
}

// TestUniqueQueueBeatlesScenario: insert (John,1940), (Paul,1942),
// (George,1943), (Ringo,1940); draining yields John/Ringo (in either
// order) then Paul, George.
func TestUniqueQueueBeatlesScenario(t *testing.T) {
	is := is.New(t)

	q := newPeopleQueue(t)
	is.NoErr(q.Enqueue(person{"John", 1940}))
	is.NoErr(q.Enqueue(person{"Paul", 1942}))
	is.NoErr(q.Enqueue(person{"George", 1943}))
	is.NoErr(q.Enqueue(person{"Ringo", 1940}))

	var order []string
	for q.Count() > 0 {
		p, err := q.RemoveMin()
		is.NoErr(err)
		order = append(order, p.name)
	}

	is.Equal(len(order), 4)
	firstTwo := map[string]bool{order[0]: true, order[1]: true}
	is.True(firstTwo["John"] && firstTwo["Ringo"])
	is.Equal(order[2], "Paul")
	is.Equal(order[3], "George")
}

func TestUniqueQueueRejectsDuplicateKey(t *testing.T) {
	is := is.New(t)

	q := newPeopleQueue(t)
	is.NoErr(q.Enqueue(person{"John", 1940}))

	err := q.Enqueue(person{"John", 9999})
	is.Equal(err, queue.ErrDuplicate)
	is.True(!q.TryEnqueue(person{"John", 1}))
}

// TestArbitraryRemoval: insert [10,20,30,40,50], TryRemove(30) succeeds,
// drain yields [10,20,40,50].
func TestArbitraryRemoval(t *testing.T) {
	is := is.New(t)

	q, err := queue.NewUnique[int, int, int](
		func(x int) int { return x },
		func(x int) int { return x },
		dheap.MinOrdered[int](),
	)
	is.NoErr(err)

	for _, v := range []int{10, 20, 30, 40, 50} {
		is.NoErr(q.Enqueue(v))
	}

	is.True(q.TryRemove(30))

	var drained []int
	for q.Count() > 0 {
		v, err := q.RemoveMin()
		is.NoErr(err)
		drained = append(drained, v)
	}
	is.Equal(drained, []int{10, 20, 40, 50})
}

func TestRemoveNotPresent(t *testing.T) {
	is := is.New(t)

	q := newPeopleQueue(t)
	err := q.Remove(person{"Nobody", 0})
	is.Equal(err, queue.ErrNotPresent)
	is.True(!q.TryRemove(person{"Nobody", 0}))
}

// TestUpdateMovesElementUp: (A,100),(B,50),(C,75); Update(A, priority=10);
// RemoveMin = A.
func TestUpdateMovesElementUp(t *testing.T) {
	is := is.New(t)

	q := newPeopleQueue(t)
	is.NoErr(q.Enqueue(person{"A", 100}))
	is.NoErr(q.Enqueue(person{"B", 50}))
	is.NoErr(q.Enqueue(person{"C", 75}))

	is.NoErr(q.Update(person{"A", 10}))

	min, err := q.RemoveMin()
	is.NoErr(err)
	is.Equal(min.name, "A")
}

// TestUpdateMovesElementDown: same start as above, then Update(B,
// priority=1000); RemoveMin = C.
func TestUpdateMovesElementDown(t *testing.T) {
	is := is.New(t)

	q := newPeopleQueue(t)
	is.NoErr(q.Enqueue(person{"A", 100}))
	is.NoErr(q.Enqueue(person{"B", 50}))
	is.NoErr(q.Enqueue(person{"C", 75}))

	is.NoErr(q.Update(person{"B", 1000}))

	min, err := q.RemoveMin()
	is.NoErr(err)
	is.Equal(min.name, "C")
}

func TestUpdateNotPresent(t *testing.T) {
	is := is.New(t)

	q := newPeopleQueue(t)
	err := q.Update(person{"Nobody", 0})
	is.Equal(err, queue.ErrNotPresent)
	is.True(!q.TryUpdate(person{"Nobody", 0}))
}

// TestUpdatePreservesMembership is property 4: after Update, Count is
// unchanged and the subsequent RemoveMin sequence matches a fresh heap
// built from the updated set.
func TestUpdatePreservesMembership(t *testing.T) {
	is := is.New(t)

	q := newPeopleQueue(t)
	people := []person{{"A", 100}, {"B", 50}, {"C", 75}, {"D", 10}}
	for _, p := range people {
		is.NoErr(q.Enqueue(p))
	}
	before := q.Count()

	is.NoErr(q.Update(person{"D", 500}))
	is.Equal(q.Count(), before)

	fresh := newPeopleQueue(t)
	updated := []person{{"A", 100}, {"B", 50}, {"C", 75}, {"D", 500}}
	for _, p := range updated {
		is.NoErr(fresh.Enqueue(p))
	}

	for q.Count() > 0 {
		got, err := q.RemoveMin()
		is.NoErr(err)
		want, err := fresh.RemoveMin()
		is.NoErr(err)
		is.Equal(got, want)
	}
}

func TestUpdateOrEnqueue(t *testing.T) {
	is := is.New(t)

	q := newPeopleQueue(t)
	q.UpdateOrEnqueue(person{"A", 100})
	is.Equal(q.Count(), 1)

	q.UpdateOrEnqueue(person{"A", 1})
	is.Equal(q.Count(), 1)

	min, err := q.RemoveMin()
	is.NoErr(err)
	is.Equal(min.born, 1)
}

// TestUniqueClearResetsCleanly is property 7.
func TestUniqueClearResetsCleanly(t *testing.T) {
	is := is.New(t)

	q := newPeopleQueue(t)
	is.NoErr(q.Enqueue(person{"A", 1}))
	is.NoErr(q.Enqueue(person{"B", 2}))

	q.Clear()

	is.Equal(q.Count(), 0)
	is.True(!q.Contains(person{"A", 1}))

	is.NoErr(q.Enqueue(person{"A", 1}))
	min, err := q.Peek()
	is.NoErr(err)
	is.Equal(min.name, "A")
}

func TestNewUniqueRejectsNilArguments(t *testing.T) {
	is := is.New(t)

	_, err := queue.NewUnique[int, int, int](nil, func(x int) int { return x }, dheap.MinOrdered[int]())
	is.Equal(err, dheap.ErrInvalidArgument)
}

func TestWithCapacityPreSizesWithoutChangingBehavior(t *testing.T) {
	is := is.New(t)

	q, err := queue.NewUnique[int, int, int](
		func(x int) int { return x },
		func(x int) int { return x },
		dheap.MinOrdered[int](),
		queue.WithCapacity(256),
	)
	is.NoErr(err)
	is.NoErr(q.Enqueue(1))
	is.Equal(q.Count(), 1)
}
