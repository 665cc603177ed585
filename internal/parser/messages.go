package parser

// Fixed diagnostic message templates, kept as named constants so a
// production reports the same wording every time it hits the same
// failure rather than composing ad hoc strings inline.
const (
	msgExpectedToken        = "%s expected"
	msgExpectedDeclaration  = "type, delegate, namespace or using declaration expected"
	msgExpectedMember       = "class, struct, interface, or enum member expected"
	msgExpectedStatement    = "statement expected"
	msgExpectedType         = "type expected"
	msgExpectedIdentifier   = "identifier expected"
	msgInvalidModifier      = "modifier '%s' is not valid for this item"
	msgDuplicateModifier    = "modifier '%s' already specified"
	msgExpectedExpression   = "expression expected"
	msgUnterminatedBlock    = "'}' expected"
	msgInvalidCatchOrder    = "a general catch clause must be the last clause"
	msgInvalidAttrTarget    = "'%s' is not a valid attribute target here"
	msgFixedRequiresPointer = "fixed statement requires a pointer type"
)
