package tokread

// Tuples group up to seven heterogeneously typed fields read in one call.
//
// ReadTuple1 parses a single field. Every wider ReadTupleK parses its first
// field and hands the rest to ReadTuple(K-1), then joins head and tail. A
// field that fails to parse ends the whole read at once: its token is
// consumed, later fields' tokens are not, and the result is false.
// Exhaustion inside a tuple panics like any other read.

// Tuple1 holds one field.
type Tuple1[A any] struct {
	V1 A
}

// Tuple2 holds two fields.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 holds three fields.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 holds four fields.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple5 holds five fields.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Tuple6 holds six fields.
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// Tuple7 holds seven fields, the widest tuple supported.
type Tuple7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

func (t Tuple1[A]) Unpack() A { return t.V1 }

func (t Tuple2[A, B]) Unpack() (A, B) { return t.V1, t.V2 }

func (t Tuple3[A, B, C]) Unpack() (A, B, C) { return t.V1, t.V2, t.V3 }

func (t Tuple4[A, B, C, D]) Unpack() (A, B, C, D) { return t.V1, t.V2, t.V3, t.V4 }

func (t Tuple5[A, B, C, D, E]) Unpack() (A, B, C, D, E) {
	return t.V1, t.V2, t.V3, t.V4, t.V5
}

func (t Tuple6[A, B, C, D, E, F]) Unpack() (A, B, C, D, E, F) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6
}

func (t Tuple7[A, B, C, D, E, F, G]) Unpack() (A, B, C, D, E, F, G) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7
}

// ReadTuple1 reads one field.
func ReadTuple1[A any](r *Reader) (Tuple1[A], bool) {
	a, ok := ReadOption[A](r)
	if !ok {
		return Tuple1[A]{}, false
	}

	return Tuple1[A]{V1: a}, true
}

// ReadTuple2 reads two fields.
func ReadTuple2[A, B any](r *Reader) (Tuple2[A, B], bool) {
	head, ok := ReadOption[A](r)
	if !ok {
		return Tuple2[A, B]{}, false
	}
	tail, ok := ReadTuple1[B](r)
	if !ok {
		return Tuple2[A, B]{}, false
	}

	return cons2(head, tail), true
}

// ReadTuple3 reads three fields.
func ReadTuple3[A, B, C any](r *Reader) (Tuple3[A, B, C], bool) {
	head, ok := ReadOption[A](r)
	if !ok {
		return Tuple3[A, B, C]{}, false
	}
	tail, ok := ReadTuple2[B, C](r)
	if !ok {
		return Tuple3[A, B, C]{}, false
	}

	return cons3(head, tail), true
}

// ReadTuple4 reads four fields.
func ReadTuple4[A, B, C, D any](r *Reader) (Tuple4[A, B, C, D], bool) {
	head, ok := ReadOption[A](r)
	if !ok {
		return Tuple4[A, B, C, D]{}, false
	}
	tail, ok := ReadTuple3[B, C, D](r)
	if !ok {
		return Tuple4[A, B, C, D]{}, false
	}

	return cons4(head, tail), true
}

// ReadTuple5 reads five fields.
func ReadTuple5[A, B, C, D, E any](r *Reader) (Tuple5[A, B, C, D, E], bool) {
	head, ok := ReadOption[A](r)
	if !ok {
		return Tuple5[A, B, C, D, E]{}, false
	}
	tail, ok := ReadTuple4[B, C, D, E](r)
	if !ok {
		return Tuple5[A, B, C, D, E]{}, false
	}

	return cons5(head, tail), true
}

// ReadTuple6 reads six fields.
func ReadTuple6[A, B, C, D, E, F any](r *Reader) (Tuple6[A, B, C, D, E, F], bool) {
	head, ok := ReadOption[A](r)
	if !ok {
		return Tuple6[A, B, C, D, E, F]{}, false
	}
	tail, ok := ReadTuple5[B, C, D, E, F](r)
	if !ok {
		return Tuple6[A, B, C, D, E, F]{}, false
	}

	return cons6(head, tail), true
}

// ReadTuple7 reads seven fields.
func ReadTuple7[A, B, C, D, E, F, G any](r *Reader) (Tuple7[A, B, C, D, E, F, G], bool) {
	head, ok := ReadOption[A](r)
	if !ok {
		return Tuple7[A, B, C, D, E, F, G]{}, false
	}
	tail, ok := ReadTuple6[B, C, D, E, F, G](r)
	if !ok {
		return Tuple7[A, B, C, D, E, F, G]{}, false
	}

	return cons7(head, tail), true
}

func cons2[A, B any](a A, t Tuple1[B]) Tuple2[A, B] {
	return Tuple2[A, B]{V1: a, V2: t.V1}
}

func cons3[A, B, C any](a A, t Tuple2[B, C]) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V1: a, V2: t.V1, V3: t.V2}
}

func cons4[A, B, C, D any](a A, t Tuple3[B, C, D]) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{V1: a, V2: t.V1, V3: t.V2, V4: t.V3}
}

func cons5[A, B, C, D, E any](a A, t Tuple4[B, C, D, E]) Tuple5[A, B, C, D, E] {
	return Tuple5[A, B, C, D, E]{V1: a, V2: t.V1, V3: t.V2, V4: t.V3, V5: t.V4}
}

func cons6[A, B, C, D, E, F any](a A, t Tuple5[B, C, D, E, F]) Tuple6[A, B, C, D, E, F] {
	return Tuple6[A, B, C, D, E, F]{V1: a, V2: t.V1, V3: t.V2, V4: t.V3, V5: t.V4, V6: t.V5}
}

func cons7[A, B, C, D, E, F, G any](a A, t Tuple6[B, C, D, E, F, G]) Tuple7[A, B, C, D, E, F, G] {
	return Tuple7[A, B, C, D, E, F, G]{V1: a, V2: t.V1, V3: t.V2, V4: t.V3, V5: t.V4, V6: t.V5, V7: t.V6}
}
