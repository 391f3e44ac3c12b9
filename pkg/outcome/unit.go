package outcome

// Unit is the payload of results that carry no information. All Unit
// values are equal; Discard narrows any Result[T] to Result[Unit].
type Unit struct{}
