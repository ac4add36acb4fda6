package evaluator

import (
	"github.com/funvibe/matx/internal/ast"
	"github.com/funvibe/matx/internal/config"
)

// loopControl interprets the result of one pass of a loop body. It reports
// whether the loop must stop and, if so, the object the loop yields.
func loopControl(res Object) (Object, bool) {
	switch res.(type) {
	case *Error, *ReturnValue:
		return res, true
	case *BreakSignal:
		return nil, true
	}
	return nil, false
}

func (e *Evaluator) evalFor(node *ast.ForStatement) Object {
	start, end, step, err := e.evalRangeBounds(node.Range)
	if err != nil {
		return err
	}

	e.env.Push(config.LoopScope)
	defer e.env.Pop()

	var result Object
	name := node.Variable.Value
	for i, ok := start, inRange(start, end, step); ok; i, ok = advance(i, end, step) {
		e.env.Set(name, &Integer{Value: i})
		res := e.evalBlock(node.Body, config.BlockScope)
		if out, stop := loopControl(res); stop {
			if out != nil {
				return out
			}
			break
		}
		if _, ok := res.(*ContinueSignal); !ok {
			result = res
		}
	}
	return result
}

func (e *Evaluator) evalWhile(node *ast.WhileStatement) Object {
	e.env.Push(config.LoopScope)
	defer e.env.Pop()

	var result Object
	for {
		cond := e.Eval(node.Condition)
		if isError(cond) {
			return cond
		}
		if !isTruthy(cond) {
			break
		}
		res := e.evalBlock(node.Body, config.BlockScope)
		if out, stop := loopControl(res); stop {
			if out != nil {
				return out
			}
			break
		}
		if _, ok := res.(*ContinueSignal); !ok {
			result = res
		}
	}
	return result
}

// evalRangeBounds evaluates start, end and step (1 when omitted).
func (e *Evaluator) evalRangeBounds(node *ast.RangeExpression) (int64, int64, int64, Object) {
	bound := func(expr ast.Expression) (int64, Object) {
		val := e.Eval(expr)
		if isError(val) {
			return 0, val
		}
		i, ok := val.(*Integer)
		if !ok {
			return 0, newErrorAt(expr, "range bound must be Int, got %s", val.Type())
		}
		return i.Value, nil
	}

	start, err := bound(node.Start)
	if err != nil {
		return 0, 0, 0, err
	}
	end, err := bound(node.End)
	if err != nil {
		return 0, 0, 0, err
	}
	step := int64(1)
	if node.Step != nil {
		if step, err = bound(node.Step); err != nil {
			return 0, 0, 0, err
		}
	}
	return start, end, step, nil
}

// inRange reports whether i is still inside the inclusive range ending at
// end. A zero step yields no values.
func inRange(i, end, step int64) bool {
	switch {
	case step > 0:
		return i <= end
	case step < 0:
		return i >= end
	}
	return false
}

// advance steps from i, which is inside the range, and reports whether the
// next value is still inside it. The distance to end is taken unsigned so
// ranges reaching the int64 limits stop instead of wrapping around.
func advance(i, end, step int64) (int64, bool) {
	switch {
	case step > 0 && uint64(end)-uint64(i) >= uint64(step):
		return i + step, true
	case step < 0 && uint64(i)-uint64(end) >= -uint64(step):
		return i + step, true
	}
	return i, false
}

// evalRangeExpression materializes a range outside of a for header.
func (e *Evaluator) evalRangeExpression(node *ast.RangeExpression) Object {
	start, end, step, err := e.evalRangeBounds(node)
	if err != nil {
		return err
	}
	var elems []Object
	for i, ok := start, inRange(start, end, step); ok; i, ok = advance(i, end, step) {
		elems = append(elems, &Integer{Value: i})
	}
	return &Vector{Elements: elems}
}
