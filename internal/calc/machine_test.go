package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apply прогоняет последовательность действий и собирает все коммиты.
func apply(s State, actions ...Action) (State, []Commit) {
	var commits []Commit
	for _, a := range actions {
		var c *Commit
		s, c = Apply(s, a)
		if c != nil {
			commits = append(commits, *c)
		}
	}
	return s, commits
}

func digit(d string) Action  { return Action{Kind: ActionDigit, Digit: d} }
func op(o string) Action     { return Action{Kind: ActionOperation, Operation: o} }
func action(k ActionKind) Action { return Action{Kind: k} }

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, "0", s.Display)
	assert.Empty(t, s.PreviousValue)
	assert.Empty(t, s.PendingOperation)
	assert.False(t, s.WaitingForOperand)
}

func TestInputDigit(t *testing.T) {
	tests := []struct {
		name  string
		state State
		digit string
		want  string
	}{
		{name: "ноль замещается", state: State{Display: "0"}, digit: "7", want: "7"},
		{name: "цифра дописывается", state: State{Display: "12"}, digit: "3", want: "123"},
		{
			name:  "после оператора начинается новый операнд",
			state: State{Display: "12", WaitingForOperand: true},
			digit: "3",
			want:  "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, commit := Apply(tt.state, digit(tt.digit))
			assert.Nil(t, commit)
			assert.Equal(t, tt.want, got.Display)
			assert.False(t, got.WaitingForOperand)
		})
	}
}

func TestInputDecimal(t *testing.T) {
	s, _ := apply(NewState(), digit("1"), action(ActionDecimal), digit("5"))
	assert.Equal(t, "1.5", s.Display)

	// Вторая точка игнорируется.
	s, _ = apply(s, action(ActionDecimal), digit("5"))
	assert.Equal(t, "1.55", s.Display)

	// После оператора точка начинает "0.".
	s, _ = apply(NewState(), digit("2"), op("+"), action(ActionDecimal))
	assert.Equal(t, "0.", s.Display)
}

func TestClear(t *testing.T) {
	s, _ := apply(NewState(), digit("2"), op("+"), digit("3"))
	s, commit := Apply(s, action(ActionClear))
	assert.Nil(t, commit)
	assert.Equal(t, NewState(), s)
}

// clearEntry сбрасывает только операнд — цепочку можно продолжить:
// 5 + 9 CE 3 = даёт 8.
func TestClearEntry_PreservesChain(t *testing.T) {
	s, commits := apply(NewState(),
		digit("5"), op("+"), digit("9"), action(ActionClearEntry), digit("3"), action(ActionEvaluate))

	assert.Equal(t, "8", s.Display)
	require.Len(t, commits, 1)
	assert.Equal(t, "5 + 3", commits[0].Expression)
	assert.Equal(t, "8", commits[0].Result)
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    string
	}{
		{name: "последний символ убирается", display: "123", want: "12"},
		{name: "последняя цифра даёт ноль", display: "7", want: "0"},
		{name: "одинокий минус не остаётся", display: "-7", want: "0"},
		{name: "минус с числом", display: "-72", want: "-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Apply(State{Display: tt.display}, action(ActionBackspace))
			assert.Equal(t, tt.want, got.Display)
		})
	}
}

func TestToggleSign(t *testing.T) {
	s, _ := Apply(State{Display: "5"}, action(ActionToggleSign))
	assert.Equal(t, "-5", s.Display)

	s, _ = Apply(s, action(ActionToggleSign))
	assert.Equal(t, "5", s.Display)

	s, _ = Apply(State{Display: "0"}, action(ActionToggleSign))
	assert.Equal(t, "0", s.Display)
}

// Процент — буквально операнд/100, отложенная операция не участвует.
func TestInputPercent(t *testing.T) {
	s, _ := Apply(State{Display: "50"}, action(ActionPercent))
	assert.Equal(t, "0.5", s.Display)

	// Даже посреди цепочки 200 + 50% операнд просто делится на сто.
	s, _ = apply(NewState(), digit("2"), digit("0"), digit("0"), op("+"), digit("5"), digit("0"))
	s, _ = Apply(s, action(ActionPercent))
	assert.Equal(t, "0.5", s.Display)
	assert.Equal(t, "200", s.PreviousValue)
}

// Сценарий из README калькулятора: 2 + 3 = даёт 5 и ровно один коммит.
func TestEvaluate_Simple(t *testing.T) {
	s, commits := apply(NewState(), digit("2"), op("+"), digit("3"), action(ActionEvaluate))

	assert.Equal(t, "5", s.Display)
	assert.Empty(t, s.PreviousValue)
	assert.Empty(t, s.PendingOperation)
	assert.True(t, s.WaitingForOperand)

	require.Len(t, commits, 1)
	assert.Equal(t, "2 + 3", commits[0].Expression)
	assert.Equal(t, "5", commits[0].Result)
}

// Деление на ноль: экран "Error", коммита нет, машина остаётся интерактивной.
func TestEvaluate_DivisionByZero(t *testing.T) {
	s, commits := apply(NewState(), digit("8"), op("/"), digit("0"), action(ActionEvaluate))

	assert.Equal(t, "Error", s.Display)
	assert.Empty(t, commits, "при ошибке коммит не эмитится")

	// Следующая цифра начинает новый операнд: waitingForOperand уже взведён.
	s, _ = Apply(s, digit("4"))
	assert.Equal(t, "4", s.Display)
}

// Цепочка без приоритетов: повторный оператор сворачивает накопленное сразу.
func TestPerformOperation_ChainedFolding(t *testing.T) {
	s, _ := apply(NewState(), digit("2"), op("+"), digit("3"))
	s, commit := Apply(s, op("+"))
	assert.Nil(t, commit, "сворачивание цепочки не пишет в историю")
	assert.Equal(t, "5", s.PreviousValue)
	assert.Equal(t, "5", s.Display)
	assert.True(t, s.WaitingForOperand)

	s, commits := apply(s, digit("4"), action(ActionEvaluate))
	assert.Equal(t, "9", s.Display)
	require.Len(t, commits, 1)
	assert.Equal(t, "5 + 4", commits[0].Expression)
}

// Без отложенной операции "=" — no-op.
func TestEvaluate_NoPending(t *testing.T) {
	s, commits := apply(NewState(), digit("7"), action(ActionEvaluate))
	assert.Equal(t, "7", s.Display)
	assert.Empty(t, commits)
}

func TestEvaluate_Operations(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		op   string
		want string
	}{
		{name: "сложение", a: "2", b: "3", op: "+", want: "5"},
		{name: "вычитание", a: "2", b: "3", op: "-", want: "-1"},
		{name: "умножение", a: "6", b: "7", op: "*", want: "42"},
		{name: "деление", a: "9", b: "2", op: "/", want: "4.5"},
		{name: "дробный результат деления", a: "1", b: "3", op: "/", want: "0.3333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, commits := apply(NewState(), digit(tt.a), op(tt.op), digit(tt.b), action(ActionEvaluate))
			assert.Equal(t, tt.want, s.Display)
			require.Len(t, commits, 1)
			assert.Equal(t, tt.a+" "+tt.op+" "+tt.b, commits[0].Expression)
		})
	}
}

// Неизвестный вид действия оставляет состояние как есть.
func TestApply_UnknownAction(t *testing.T) {
	s := State{Display: "12", PreviousValue: "3", PendingOperation: "+"}
	got, commit := Apply(s, Action{Kind: ActionKind("typo")})
	assert.Nil(t, commit)
	assert.Equal(t, s, got)
}
