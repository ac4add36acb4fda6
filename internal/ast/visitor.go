package ast

// Visitor enumerates every node kind. Adding a node means adding a method
// here, so every implementation has to handle it.
type Visitor interface {
	VisitProgram(node *Program)
	VisitBlock(node *Block)
	VisitAssignmentStatement(node *AssignmentStatement)
	VisitAssignTarget(node *AssignTarget)
	VisitPrintStatement(node *PrintStatement)
	VisitIfStatement(node *IfStatement)
	VisitWhileStatement(node *WhileStatement)
	VisitForStatement(node *ForStatement)
	VisitBreakStatement(node *BreakStatement)
	VisitContinueStatement(node *ContinueStatement)
	VisitReturnStatement(node *ReturnStatement)

	VisitIdentifier(node *Identifier)
	VisitIntegerLiteral(node *IntegerLiteral)
	VisitFloatLiteral(node *FloatLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitRangeExpression(node *RangeExpression)
	VisitConditionExpression(node *ConditionExpression)
	VisitBinaryExpression(node *BinaryExpression)
	VisitTranspositionExpression(node *TranspositionExpression)
	VisitNegationExpression(node *NegationExpression)
	VisitFunctionCall(node *FunctionCall)
	VisitAccessExpression(node *AccessExpression)
	VisitMatrixLiteral(node *MatrixLiteral)
	VisitSequenceLiteral(node *SequenceLiteral)
}
