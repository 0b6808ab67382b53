package collection

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

type person struct {
	Name string
	Age  int
}

// greeting is the resolved form of a person.
type greeting struct {
	text string
}

type people struct {
	Collection[*people, person, *greeting]
}

func newPeople(src Source[person]) *people {
	return &people{New(src, newPeople, newGreeting)}
}

func newGreeting(p person) *greeting {
	return &greeting{
		text: "hello " + p.Name,
	}
}

// counted resolves ints to strings and counts how often it does so.
type counted struct {
	Collection[*counted, int, string]
}

func countedOf(calls *int, elems ...int) *counted {
	var ctor func(Source[int]) *counted

	ctor = func(src Source[int]) *counted {
		return &counted{New(src, ctor, func(item int) string {
			*calls++
			return strconv.Itoa(item)
		})}
	}

	return ctor(FromSlice(elems))
}

func TestNew(t *testing.T) {
	is := is.New(t)

	c := newPeople(Of(person{Name: "ann", Age: 30}, person{Name: "bob", Age: 20}))

	is.Equal(c.Len(), 2)
	is.Equal(c.Raw(), []person{{Name: "ann", Age: 30}, {Name: "bob", Age: 20}})

	first, ok := c.First()
	is.True(ok)
	is.Equal(first.text, "hello ann")
}

func TestNew_Borrow(t *testing.T) {
	is := is.New(t)

	src := PlainOf(1, 2, 3)

	c := NewPlain[int](src)

	is.Equal(c.Raw(), []int{1, 2, 3})
	is.True(&c.Items().elems[0] == &src.Items().elems[0]) // shared, not copied
}

func TestNew_NilSource(t *testing.T) {
	is := is.New(t)

	c := NewPlain[int](nil)

	is.True(c.IsEmpty())
	is.Equal(c.Append(1).Raw(), []int{1})
}

func TestLen(t *testing.T) {
	is := is.New(t)

	empty := PlainOf[int]()
	is.Equal(empty.Len(), 0)
	is.True(empty.IsEmpty())
	is.True(!empty.IsNotEmpty())
	is.True(!empty.HasMany())

	one := PlainOf(1)
	is.Equal(one.Len(), 1)
	is.True(!one.IsEmpty())
	is.True(one.IsNotEmpty())
	is.True(!one.HasMany())

	two := PlainOf(1, 2)
	is.Equal(two.Len(), 2)
	is.True(two.HasMany())
}

func TestToSlice(t *testing.T) {
	is := is.New(t)

	c := newPeople(Of(person{Name: "ann"}, person{Name: "bob"}))

	first := c.ToSlice()
	second := c.ToSlice()

	is.Equal(len(first), 2)
	is.Equal(first[0].text, "hello ann")
	is.Equal(first[1].text, "hello bob")
	is.Equal(first, second)
	is.True(first[0] != second[0]) // resolved again on each read
}

func TestRaw(t *testing.T) {
	is := is.New(t)

	c := PlainOf(1, 2, 3)

	raw := c.Raw()
	raw[0] = 9

	is.Equal(c.Raw(), []int{1, 2, 3})
}

func TestToCollection(t *testing.T) {
	is := is.New(t)

	c := newPeople(Of(person{Name: "ann"}, person{Name: "bob"}))

	plain := c.ToCollection()

	is.Equal(plain.Len(), 2)

	last, err := plain.LastOrFail()
	is.NoErr(err)
	is.Equal(last.text, "hello bob")
}

func TestEach(t *testing.T) {
	is := is.New(t)

	c := newPeople(Of(person{Name: "ann"}, person{Name: "bob"}))

	texts := []string{}
	indexes := []int{}

	c.Each(func(item *greeting, index int) {
		texts = append(texts, item.text)
		indexes = append(indexes, index)
	})

	is.Equal(texts, []string{"hello ann", "hello bob"})
	is.Equal(indexes, []int{0, 1})
}

func TestMap(t *testing.T) {
	is := is.New(t)

	c := newPeople(Of(person{Name: "ann"}, person{Name: "bob"}))

	result := Map(c, func(item *greeting, index int) string {
		return strconv.Itoa(index) + ":" + item.text
	})

	is.Equal(result, []string{"0:hello ann", "1:hello bob"})
}

func TestReduce(t *testing.T) {
	is := is.New(t)

	c := newPeople(Of(person{Name: "ann", Age: 30}, person{Name: "bob", Age: 20}))

	sum := Reduce(c, 0, func(acc int, item person) int {
		return acc + item.Age
	})

	is.Equal(sum, 50)

	names := Reduce(c, "", func(acc string, item person) string {
		return acc + item.Name
	})

	is.Equal(names, "annbob")
}

func TestResolve_Lazy(t *testing.T) {
	is := is.New(t)

	calls := 0

	c := countedOf(&calls, 3, 1, 2)

	c = c.Select(func(item int) bool {
		return item > 1
	}).Sort(func(a int, b int) bool {
		return a < b
	}).Reverse()

	is.Equal(calls, 0)

	first, ok := c.First()
	is.True(ok)
	is.Equal(first, "3")
	is.Equal(calls, 1)

	_, _ = c.First()
	is.Equal(calls, 2)

	is.Equal(c.ToSlice(), []string{"3", "2"})
	is.Equal(calls, 4)

	is.True(c.AnyMatch(func(item int) bool {
		return item == 2
	}))
	is.Equal(calls, 4)
}

func TestSubtypePreserved(t *testing.T) {
	is := is.New(t)

	c := newPeople(Of(person{Name: "ann", Age: 30}, person{Name: "bob", Age: 20}, person{Name: "cid", Age: 40}))

	var chained *people = c.
		Select(func(item person) bool { return item.Age > 25 }).
		Slice(0, 2).
		Sort(func(a person, b person) bool { return a.Age > b.Age }).
		Reverse().
		Skip(0).
		Take(5).
		Concat(c).
		Update(0, person{Name: "dan"}).
		Prepend(person{Name: "eve"}).
		Append(person{Name: "fay"}).
		Remove(1)

	names := Map(chained, func(item *greeting, _ int) string {
		return item.text
	})

	is.Equal(names, []string{
		"hello eve",
		"hello cid",
		"hello ann",
		"hello bob",
		"hello cid",
		"hello fay",
	})
}
