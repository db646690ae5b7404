package analysis

// FrequencyTable counts occurrences per cookie and remembers the order in
// which each cookie was first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	max    int
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add records one occurrence of cookie.
func (f *FrequencyTable) Add(cookie string) {
	n, seen := f.counts[cookie]
	if !seen {
		f.order = append(f.order, cookie)
	}
	n++
	f.counts[cookie] = n
	if n > f.max {
		f.max = n
	}
}

// Len returns the number of distinct cookies.
func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Max returns the highest count, or 0 for an empty table.
func (f *FrequencyTable) Max() int {
	return f.max
}

// Leaders returns every cookie whose count equals Max, in first-seen order.
// The result is empty, not nil, when the table is empty.
func (f *FrequencyTable) Leaders() []string {
	leaders := []string{}
	if f.max == 0 {
		return leaders
	}
	for _, c := range f.order {
		if f.counts[c] == f.max {
			leaders = append(leaders, c)
		}
	}
	return leaders
}
