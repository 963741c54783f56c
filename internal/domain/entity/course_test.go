package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLessons(n int) []*Lesson {
	lessons := make([]*Lesson, n)
	for i := range lessons {
		lessons[i] = &Lesson{ID: uuid.New(), Position: i}
	}

	return lessons
}

func TestCourse_Classify(t *testing.T) {
	course := &Course{Key: "nahwu-dasar", MinimumContribution: 10000}

	paid := course.Classify(&Lesson{IsFreePreview: false})
	assert.Equal(t, LessonClassification{CourseKey: "nahwu-dasar", MinimumContribution: 10000}, paid)

	free := course.Classify(&Lesson{IsFreePreview: true})
	assert.True(t, free.IsFreePreview)

	whole := course.Classify(nil)
	assert.False(t, whole.IsFreePreview)
}

func TestCourse_EffectiveMinimum(t *testing.T) {
	assert.Equal(t, int64(25000), (&Course{MinimumContribution: 25000}).EffectiveMinimum(10000))
	assert.Equal(t, int64(10000), (&Course{}).EffectiveMinimum(10000))
	assert.Equal(t, int64(10000), (&Course{MinimumContribution: -1}).EffectiveMinimum(10000))
}

func TestMoveLesson(t *testing.T) {
	lessons := newLessons(4)
	a, b, c, d := lessons[0], lessons[1], lessons[2], lessons[3]

	changes, ok := MoveLesson(lessons, d.ID, 1)
	require.True(t, ok)

	assert.Equal(t, 0, a.Position)
	assert.Equal(t, 1, d.Position)
	assert.Equal(t, 2, b.Position)
	assert.Equal(t, 3, c.Position)
	assert.ElementsMatch(t, []PositionChange{
		{LessonID: d.ID, Position: 1},
		{LessonID: b.ID, Position: 2},
		{LessonID: c.ID, Position: 3},
	}, changes)
}

func TestMoveLesson_SamePositionIsNoop(t *testing.T) {
	lessons := newLessons(3)

	changes, ok := MoveLesson(lessons, lessons[1].ID, 1)
	require.True(t, ok)
	assert.Empty(t, changes)
}

func TestMoveLesson_CompactsGaps(t *testing.T) {
	lessons := []*Lesson{{ID: uuid.New(), Position: 10}, {ID: uuid.New(), Position: 20}}

	changes, ok := MoveLesson(lessons, lessons[0].ID, 0)
	require.True(t, ok)
	assert.Len(t, changes, 2)
	assert.Equal(t, 0, lessons[0].Position)
	assert.Equal(t, 1, lessons[1].Position)
}

func TestMoveLesson_Invalid(t *testing.T) {
	lessons := newLessons(2)

	_, ok := MoveLesson(lessons, lessons[0].ID, 2)
	assert.False(t, ok)
	_, ok = MoveLesson(lessons, lessons[0].ID, -1)
	assert.False(t, ok)
	_, ok = MoveLesson(lessons, uuid.New(), 0)
	assert.False(t, ok)
}

func TestActor(t *testing.T) {
	anon := AnonymousActor()
	assert.True(t, anon.IsAnonymous())
	assert.Nil(t, anon.IDPtr())
	assert.False(t, anon.HasRole(RoleStudent))

	id := uuid.New()
	actor := NewActor(id, Roles{RoleOperator})
	assert.False(t, actor.IsAnonymous())
	require.NotNil(t, actor.IDPtr())
	assert.Equal(t, id, *actor.IDPtr())
	assert.True(t, actor.HasRole(RoleOperator))
	assert.False(t, actor.HasRole(RoleStudent))
}

func TestGateState(t *testing.T) {
	assert.Equal(t, "unknown", GateUnknown.String())
	assert.Equal(t, "granted", GateGranted.String())
	assert.Equal(t, "denied", GateDenied.String())
	assert.False(t, GateUnknown.IsResolved())
	assert.True(t, GateDenied.IsResolved())

	text, err := GateGranted.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "granted", string(text))
}

func TestEntitlement_Grants(t *testing.T) {
	actorID := uuid.New()
	e := &Entitlement{ActorID: actorID, CourseKey: "fiqih", Status: EntitlementStatusActive}

	assert.True(t, e.Grants(actorID, "fiqih"))
	assert.False(t, e.Grants(actorID, "tauhid"))
	assert.False(t, e.Grants(uuid.New(), "fiqih"))

	e.Status = EntitlementStatusInactive
	assert.False(t, e.Grants(actorID, "fiqih"))

	var missing *Entitlement
	assert.False(t, missing.IsActive())
}

func TestFontSizeBounds(t *testing.T) {
	bounds := FontSizeBounds{Min: 16, Max: 48}
	base := DisplaySettings{FontSize: 24, ShowTranslation: true}

	assert.Equal(t, 16, base.WithFontSize(4, bounds).FontSize)
	assert.Equal(t, 48, base.WithFontSize(90, bounds).FontSize)
	assert.Equal(t, 30, base.WithFontSize(30, bounds).FontSize)
	assert.Equal(t, 24, base.FontSize)
	assert.False(t, base.WithTranslation(false).ShowTranslation)
	assert.Equal(t, 7, FontSizeBounds{}.Clamp(7))
}
