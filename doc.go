/*
Package anyvalue generates random values for use in tests.

A value from this package says that its content is not relevant to the
behavior under test: it could be "any" value without changing the result.

	person := NewPerson(anyvalue.String(), time.Now().AddDate(-10, 0, 0))
	if person.Age() != 10 {
		t.Fatal("expected age 10, got ", person.Age())
	}

Package-level functions draw from a process-wide Generator. Tests that need a
reproducible stream create their own:

	g := anyvalue.NewFromName(t.Name())
	color := anyvalue.EnumerationExceptFrom(g, Red)

Setting ANYVALUE_SEED fixes the seed of the process-wide generator.
*/
package anyvalue
