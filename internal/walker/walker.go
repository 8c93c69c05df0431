// File: internal/walker/walker.go
package walker

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
)

// Opt configures a Walker.
type Opt func(*settings)

type settings struct {
	maxDepth int
	logger   *zap.Logger
}

// WithMaxDepth bounds the nesting depth of class expressions and data ranges.
// Zero or a negative value means unbounded.
func WithMaxDepth(n int) Opt {
	return func(s *settings) { s.maxDepth = n }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *zap.Logger) Opt {
	return func(s *settings) { s.logger = logger }
}

// Walker drives a ContextVisitor over a document in a fixed depth-first order.
//
// A Walker is not safe for concurrent use. It keeps no state between calls to
// Document beyond the visitor itself.
type Walker[T any] struct {
	v        ContextVisitor[T]
	maxDepth int
	log      *zap.Logger

	// per-traversal
	depth   int
	current owl.ComponentKind
	errs    error
}

// New creates a Walker around v.
func New[T any](v ContextVisitor[T], opts ...Opt) *Walker[T] {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return &Walker[T]{
		v:        v,
		maxDepth: s.maxDepth,
		log:      s.logger.Named("walker"),
	}
}

// Visitor returns the wrapped visitor.
func (w *Walker[T]) Visitor() ContextVisitor[T] {
	return w.v
}

// Document walks doc: first the ontology ID, then every annotated component in
// the document's own order. Recoverable problems found on the way, an empty
// component slot included, are collected and returned together once the whole
// document has been visited.
func (w *Walker[T]) Document(doc *owl.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	w.depth, w.errs = 0, nil

	ctx := w.v.VisitDocument(None[T](), doc)
	w.current = owl.KindOntologyID
	w.ontologyID(ctx, doc.ID)
	for _, ac := range doc.Components {
		w.annotatedComponent(ctx, ac)
	}

	err := w.errs
	w.errs = nil
	if err != nil {
		w.log.Debug("Traversal finished with recoverable errors", zap.Int("count", len(multierr.Errors(err))))
	}
	return err
}

// AnnotatedComponent walks a single component with no parent context.
func (w *Walker[T]) AnnotatedComponent(ac owl.AnnotatedComponent) error {
	w.depth, w.errs = 0, nil
	w.annotatedComponent(None[T](), ac)
	err := w.errs
	w.errs = nil
	return err
}

func (w *Walker[T]) fail(err error) {
	w.errs = multierr.Append(w.errs, err)
}

func (w *Walker[T]) unknown(slot string, value any) {
	w.fail(&NodeError{Component: w.current, Slot: slot, Value: value})
}

// enter increments the expression depth. It returns false, and records a
// DepthError, when the limit is reached.
func (w *Walker[T]) enter() bool {
	if w.maxDepth > 0 && w.depth >= w.maxDepth {
		w.fail(&DepthError{Component: w.current, Limit: w.maxDepth})
		return false
	}
	w.depth++
	return true
}

func (w *Walker[T]) leave() { w.depth-- }

func (w *Walker[T]) ontologyID(parent Option[T], id owl.OntologyID) {
	ctx := w.v.VisitOntologyID(parent, id)
	if id.IRI != "" {
		w.iri(ctx, id.IRI)
	}
	if id.VersionIRI != "" {
		w.iri(ctx, id.VersionIRI)
	}
}

func (w *Walker[T]) annotatedComponent(parent Option[T], ac owl.AnnotatedComponent) {
	ctx := w.v.VisitAnnotatedComponent(parent, ac)
	w.component(ctx, ac.Component)
	w.annotations(ctx, ac.Annotations)
}

func (w *Walker[T]) component(parent Option[T], c owl.Component) {
	if c == nil {
		w.current = noComponent
		w.unknown("component", c)
		return
	}
	w.current = c.Kind()
	w.log.Debug("Visiting component", zap.Stringer("kind", w.current))
	ctx := w.v.VisitComponent(parent, c)

	switch ax := c.(type) {
	case owl.OntologyID:
		w.ontologyID(ctx, ax)
	case owl.DocIRI:
		w.iri(w.v.VisitDocIRI(ctx, ax), ax.IRI)
	case owl.Import:
		w.iri(w.v.VisitImport(ctx, ax), ax.IRI)
	case owl.OntologyAnnotation:
		w.annotation(w.v.VisitOntologyAnnotation(ctx, ax), ax.Annotation)
	case owl.DeclareClass:
		w.class(w.v.VisitDeclareClass(ctx, ax), ax.Class)
	case owl.DeclareObjectProperty:
		w.objectProperty(w.v.VisitDeclareObjectProperty(ctx, ax), ax.Property)
	case owl.DeclareAnnotationProperty:
		w.annotationProperty(w.v.VisitDeclareAnnotationProperty(ctx, ax), ax.Property)
	case owl.DeclareDataProperty:
		w.dataProperty(w.v.VisitDeclareDataProperty(ctx, ax), ax.Property)
	case owl.DeclareNamedIndividual:
		w.namedIndividual(w.v.VisitDeclareNamedIndividual(ctx, ax), ax.Individual)
	case owl.DeclareDatatype:
		w.datatype(w.v.VisitDeclareDatatype(ctx, ax), ax.Datatype)

	case owl.SubClassOf:
		sub := w.v.VisitSubClassOf(ctx, ax)
		w.classExpression(sub, ax.Sup)
		w.classExpression(sub, ax.Sub)
	case owl.EquivalentClasses:
		w.classExpressions(w.v.VisitEquivalentClasses(ctx, ax), ax.Classes)
	case owl.DisjointClasses:
		w.classExpressions(w.v.VisitDisjointClasses(ctx, ax), ax.Classes)
	case owl.DisjointUnion:
		sub := w.v.VisitDisjointUnion(ctx, ax)
		w.class(sub, ax.Class)
		w.classExpressions(sub, ax.Classes)

	case owl.SubObjectPropertyOf:
		sub := w.v.VisitSubObjectPropertyOf(ctx, ax)
		w.objectPropertyExpression(sub, ax.Sup)
		w.subObjectPropertyExpression(sub, ax.Sub)
	case owl.EquivalentObjectProperties:
		w.objectPropertyExpressions(w.v.VisitEquivalentObjectProperties(ctx, ax), ax.Properties)
	case owl.DisjointObjectProperties:
		w.objectPropertyExpressions(w.v.VisitDisjointObjectProperties(ctx, ax), ax.Properties)
	case owl.InverseObjectProperties:
		sub := w.v.VisitInverseObjectProperties(ctx, ax)
		w.objectProperty(sub, ax.First)
		w.objectProperty(sub, ax.Second)
	case owl.ObjectPropertyDomain:
		sub := w.v.VisitObjectPropertyDomain(ctx, ax)
		w.objectPropertyExpression(sub, ax.Property)
		w.classExpression(sub, ax.Domain)
	case owl.ObjectPropertyRange:
		sub := w.v.VisitObjectPropertyRange(ctx, ax)
		w.objectPropertyExpression(sub, ax.Property)
		w.classExpression(sub, ax.Range)
	case owl.FunctionalObjectProperty:
		w.objectPropertyExpression(w.v.VisitFunctionalObjectProperty(ctx, ax), ax.Property)
	case owl.InverseFunctionalObjectProperty:
		w.objectPropertyExpression(w.v.VisitInverseFunctionalObjectProperty(ctx, ax), ax.Property)
	case owl.ReflexiveObjectProperty:
		w.objectPropertyExpression(w.v.VisitReflexiveObjectProperty(ctx, ax), ax.Property)
	case owl.IrreflexiveObjectProperty:
		w.objectPropertyExpression(w.v.VisitIrreflexiveObjectProperty(ctx, ax), ax.Property)
	case owl.SymmetricObjectProperty:
		w.objectPropertyExpression(w.v.VisitSymmetricObjectProperty(ctx, ax), ax.Property)
	case owl.AsymmetricObjectProperty:
		w.objectPropertyExpression(w.v.VisitAsymmetricObjectProperty(ctx, ax), ax.Property)
	case owl.TransitiveObjectProperty:
		w.objectPropertyExpression(w.v.VisitTransitiveObjectProperty(ctx, ax), ax.Property)

	case owl.SubDataPropertyOf:
		sub := w.v.VisitSubDataPropertyOf(ctx, ax)
		w.dataProperty(sub, ax.Sup)
		w.dataProperty(sub, ax.Sub)
	case owl.EquivalentDataProperties:
		w.dataProperties(w.v.VisitEquivalentDataProperties(ctx, ax), ax.Properties)
	case owl.DisjointDataProperties:
		w.dataProperties(w.v.VisitDisjointDataProperties(ctx, ax), ax.Properties)
	case owl.DataPropertyDomain:
		sub := w.v.VisitDataPropertyDomain(ctx, ax)
		w.dataProperty(sub, ax.Property)
		w.classExpression(sub, ax.Domain)
	case owl.DataPropertyRange:
		sub := w.v.VisitDataPropertyRange(ctx, ax)
		w.dataProperty(sub, ax.Property)
		w.dataRange(sub, ax.Range)
	case owl.FunctionalDataProperty:
		w.dataProperty(w.v.VisitFunctionalDataProperty(ctx, ax), ax.Property)
	case owl.DatatypeDefinition:
		sub := w.v.VisitDatatypeDefinition(ctx, ax)
		w.datatype(sub, ax.Datatype)
		w.dataRange(sub, ax.Range)
	case owl.HasKey:
		sub := w.v.VisitHasKey(ctx, ax)
		w.classExpression(sub, ax.Class)
		for _, pe := range ax.Properties {
			w.propertyExpression(sub, pe)
		}

	case owl.SameIndividual:
		w.individuals(w.v.VisitSameIndividual(ctx, ax), ax.Individuals)
	case owl.DifferentIndividuals:
		w.individuals(w.v.VisitDifferentIndividuals(ctx, ax), ax.Individuals)
	case owl.ClassAssertion:
		sub := w.v.VisitClassAssertion(ctx, ax)
		w.classExpression(sub, ax.Class)
		w.individual(sub, ax.Individual)
	case owl.ObjectPropertyAssertion:
		sub := w.v.VisitObjectPropertyAssertion(ctx, ax)
		w.objectPropertyExpression(sub, ax.Property)
		w.individual(sub, ax.From)
		w.individual(sub, ax.To)
	case owl.NegativeObjectPropertyAssertion:
		sub := w.v.VisitNegativeObjectPropertyAssertion(ctx, ax)
		w.objectPropertyExpression(sub, ax.Property)
		w.individual(sub, ax.From)
		w.individual(sub, ax.To)
	case owl.DataPropertyAssertion:
		sub := w.v.VisitDataPropertyAssertion(ctx, ax)
		w.dataProperty(sub, ax.Property)
		w.individual(sub, ax.From)
		w.literal(sub, ax.To)
	case owl.NegativeDataPropertyAssertion:
		sub := w.v.VisitNegativeDataPropertyAssertion(ctx, ax)
		w.dataProperty(sub, ax.Property)
		w.individual(sub, ax.From)
		w.literal(sub, ax.To)

	case owl.AnnotationAssertion:
		sub := w.v.VisitAnnotationAssertion(ctx, ax)
		w.annotationSubject(sub, ax.Subject)
		w.annotation(sub, ax.Annotation)
	case owl.SubAnnotationPropertyOf:
		sub := w.v.VisitSubAnnotationPropertyOf(ctx, ax)
		w.annotationProperty(sub, ax.Sup)
		w.annotationProperty(sub, ax.Sub)
	case owl.AnnotationPropertyDomain:
		sub := w.v.VisitAnnotationPropertyDomain(ctx, ax)
		w.annotationProperty(sub, ax.Property)
		w.iri(sub, ax.IRI)
	case owl.AnnotationPropertyRange:
		sub := w.v.VisitAnnotationPropertyRange(ctx, ax)
		w.annotationProperty(sub, ax.Property)
		w.iri(sub, ax.IRI)

	case owl.Rule:
		sub := w.v.VisitRule(ctx, ax)
		w.atoms(sub, ax.Head)
		w.atoms(sub, ax.Body)

	default:
		w.unknown("component", c)
	}
}

// -- Leaves and entities --

func (w *Walker[T]) iri(parent Option[T], iri owl.IRI) {
	w.v.VisitIRI(parent, iri)
}

func (w *Walker[T]) anonymousIndividual(parent Option[T], ai owl.AnonymousIndividual) {
	w.v.VisitAnonymousIndividual(parent, ai)
}

func (w *Walker[T]) individual(parent Option[T], ind owl.Individual) {
	ctx := w.v.VisitIndividual(parent, ind)
	switch i := ind.(type) {
	case owl.NamedIndividual:
		w.namedIndividual(ctx, i)
	case owl.AnonymousIndividual:
		w.anonymousIndividual(ctx, i)
	default:
		w.unknown("individual", ind)
	}
}

func (w *Walker[T]) annotationSubject(parent Option[T], subj owl.AnnotationSubject) {
	ctx := w.v.VisitAnnotationSubject(parent, subj)
	switch s := subj.(type) {
	case owl.IRI:
		w.iri(ctx, s)
	case owl.AnonymousIndividual:
		w.anonymousIndividual(ctx, s)
	default:
		w.unknown("annotation subject", subj)
	}
}

func (w *Walker[T]) class(parent Option[T], c owl.Class) {
	w.iri(w.v.VisitClass(parent, c), c.IRI)
}

func (w *Walker[T]) datatype(parent Option[T], dt owl.Datatype) {
	w.iri(w.v.VisitDatatype(parent, dt), dt.IRI)
}

func (w *Walker[T]) objectProperty(parent Option[T], op owl.ObjectProperty) {
	w.iri(w.v.VisitObjectProperty(parent, op), op.IRI)
}

func (w *Walker[T]) dataProperty(parent Option[T], dp owl.DataProperty) {
	w.iri(w.v.VisitDataProperty(parent, dp), dp.IRI)
}

func (w *Walker[T]) annotationProperty(parent Option[T], ap owl.AnnotationProperty) {
	w.iri(w.v.VisitAnnotationProperty(parent, ap), ap.IRI)
}

func (w *Walker[T]) namedIndividual(parent Option[T], ni owl.NamedIndividual) {
	w.iri(w.v.VisitNamedIndividual(parent, ni), ni.IRI)
}

func (w *Walker[T]) variable(parent Option[T], v owl.Variable) {
	w.v.VisitVariable(parent, v)
}

// -- Rules --

func (w *Walker[T]) atom(parent Option[T], a owl.Atom) {
	ctx := w.v.VisitAtom(parent, a)
	switch at := a.(type) {
	case owl.BuiltInAtom:
		w.iri(ctx, at.Predicate)
		w.dArguments(ctx, at.Args)
	case owl.ClassAtom:
		w.classExpression(ctx, at.Predicate)
		w.iArgument(ctx, at.Arg)
	case owl.DataPropertyAtom:
		w.dataProperty(ctx, at.Predicate)
		w.dArgument(ctx, at.Subject)
		w.dArgument(ctx, at.Object)
	case owl.DataRangeAtom:
		w.dataRange(ctx, at.Predicate)
		w.dArgument(ctx, at.Arg)
	case owl.DifferentIndividualsAtom:
		w.iArgument(ctx, at.First)
		w.iArgument(ctx, at.Second)
	case owl.ObjectPropertyAtom:
		w.objectPropertyExpression(ctx, at.Predicate)
		w.iArgument(ctx, at.Subject)
		w.iArgument(ctx, at.Object)
	case owl.SameIndividualAtom:
		w.iArgument(ctx, at.First)
		w.iArgument(ctx, at.Second)
	default:
		w.unknown("atom", a)
	}
}

func (w *Walker[T]) dArgument(parent Option[T], arg owl.DArgument) {
	ctx := w.v.VisitDArgument(parent, arg)
	switch a := arg.(type) {
	case owl.Literal:
		w.literal(ctx, a)
	case owl.Variable:
		w.variable(ctx, a)
	default:
		w.unknown("data argument", arg)
	}
}

func (w *Walker[T]) iArgument(parent Option[T], arg owl.IArgument) {
	ctx := w.v.VisitIArgument(parent, arg)
	switch a := arg.(type) {
	case owl.NamedIndividual:
		w.individual(ctx, a)
	case owl.AnonymousIndividual:
		w.individual(ctx, a)
	case owl.Variable:
		w.variable(ctx, a)
	default:
		w.unknown("individual argument", arg)
	}
}

// -- Expressions --

func (w *Walker[T]) literal(parent Option[T], lit owl.Literal) {
	ctx := w.v.VisitLiteral(parent, lit)
	switch lit.Kind() {
	case owl.LiteralSimple:
		w.v.VisitString(ctx, lit.Value)
	case owl.LiteralLanguage:
		w.v.VisitString(ctx, lit.Value)
		w.v.VisitString(ctx, lit.Lang)
	case owl.LiteralDatatype:
		w.iri(ctx, lit.Datatype)
	}
}

func (w *Walker[T]) annotation(parent Option[T], ann owl.Annotation) {
	ctx := w.v.VisitAnnotation(parent, ann)
	w.annotationProperty(ctx, ann.Property)
	w.annotationValue(ctx, ann.Value)
}

func (w *Walker[T]) annotationValue(parent Option[T], av owl.AnnotationValue) {
	ctx := w.v.VisitAnnotationValue(parent, av)
	switch v := av.(type) {
	case owl.Literal:
		w.literal(ctx, v)
	case owl.IRI:
		w.iri(ctx, v)
	case owl.AnonymousIndividual:
		w.anonymousIndividual(ctx, v)
	default:
		w.unknown("annotation value", av)
	}
}

func (w *Walker[T]) objectPropertyExpression(parent Option[T], ope owl.ObjectPropertyExpression) {
	ctx := w.v.VisitObjectPropertyExpression(parent, ope)
	switch p := ope.(type) {
	case owl.ObjectProperty:
		w.objectProperty(ctx, p)
	case owl.InverseObjectProperty:
		w.objectProperty(ctx, p.Property)
	default:
		w.unknown("object property expression", ope)
	}
}

func (w *Walker[T]) subObjectPropertyExpression(parent Option[T], sope owl.SubObjectPropertyExpression) {
	ctx := w.v.VisitSubObjectPropertyExpression(parent, sope)
	switch p := sope.(type) {
	case owl.ObjectPropertyChain:
		w.objectPropertyExpressions(ctx, p.Properties)
	case owl.ObjectPropertyExpression:
		w.objectPropertyExpression(ctx, p)
	default:
		w.unknown("sub object property expression", sope)
	}
}

func (w *Walker[T]) propertyExpression(parent Option[T], pe owl.PropertyExpression) {
	ctx := w.v.VisitPropertyExpression(parent, pe)
	switch p := pe.(type) {
	case owl.ObjectProperty:
		w.objectPropertyExpression(ctx, p)
	case owl.InverseObjectProperty:
		w.objectPropertyExpression(ctx, p)
	case owl.DataProperty:
		w.dataProperty(ctx, p)
	case owl.AnnotationProperty:
		w.annotationProperty(ctx, p)
	default:
		w.unknown("property expression", pe)
	}
}

func (w *Walker[T]) facetRestriction(parent Option[T], fr owl.FacetRestriction) {
	ctx := w.v.VisitFacetRestriction(parent, fr)
	w.v.VisitFacet(ctx, fr.Facet)
	w.literal(ctx, fr.Value)
}

func (w *Walker[T]) dataRange(parent Option[T], dr owl.DataRange) {
	if !w.enter() {
		return
	}
	defer w.leave()

	ctx := w.v.VisitDataRange(parent, dr)
	switch r := dr.(type) {
	case owl.Datatype:
		w.datatype(ctx, r)
	case owl.DataIntersectionOf:
		w.dataRanges(ctx, r.Ranges)
	case owl.DataUnionOf:
		w.dataRanges(ctx, r.Ranges)
	case owl.DataComplementOf:
		w.dataRange(ctx, r.Range)
	case owl.DataOneOf:
		w.literals(ctx, r.Literals)
	case owl.DatatypeRestriction:
		w.datatype(ctx, r.Datatype)
		w.facetRestrictions(ctx, r.Restrictions)
	default:
		w.unknown("data range", dr)
	}
}

func (w *Walker[T]) classExpression(parent Option[T], ce owl.ClassExpression) {
	if !w.enter() {
		return
	}
	defer w.leave()

	ctx := w.v.VisitClassExpression(parent, ce)
	switch e := ce.(type) {
	case owl.Class:
		w.class(ctx, e)
	case owl.ObjectIntersectionOf:
		w.classExpressions(ctx, e.Classes)
	case owl.ObjectUnionOf:
		w.classExpressions(ctx, e.Classes)
	case owl.ObjectComplementOf:
		w.classExpression(ctx, e.Class)
	case owl.ObjectOneOf:
		w.individuals(ctx, e.Individuals)
	case owl.ObjectSomeValuesFrom:
		w.objectPropertyExpression(ctx, e.Property)
		w.classExpression(ctx, e.Filler)
	case owl.ObjectAllValuesFrom:
		w.objectPropertyExpression(ctx, e.Property)
		w.classExpression(ctx, e.Filler)
	case owl.ObjectHasValue:
		w.objectPropertyExpression(ctx, e.Property)
		w.individual(ctx, e.Individual)
	case owl.ObjectHasSelf:
		w.objectPropertyExpression(ctx, e.Property)
	case owl.ObjectMinCardinality:
		w.v.VisitCardinality(ctx, e.N)
		w.objectPropertyExpression(ctx, e.Property)
		w.classExpression(ctx, e.Filler)
	case owl.ObjectMaxCardinality:
		w.v.VisitCardinality(ctx, e.N)
		w.objectPropertyExpression(ctx, e.Property)
		w.classExpression(ctx, e.Filler)
	case owl.ObjectExactCardinality:
		w.v.VisitCardinality(ctx, e.N)
		w.objectPropertyExpression(ctx, e.Property)
		w.classExpression(ctx, e.Filler)
	case owl.DataSomeValuesFrom:
		w.dataProperty(ctx, e.Property)
		w.dataRange(ctx, e.Range)
	case owl.DataAllValuesFrom:
		w.dataProperty(ctx, e.Property)
		w.dataRange(ctx, e.Range)
	case owl.DataHasValue:
		w.dataProperty(ctx, e.Property)
		w.literal(ctx, e.Value)
	case owl.DataMinCardinality:
		w.v.VisitCardinality(ctx, e.N)
		w.dataProperty(ctx, e.Property)
		w.dataRange(ctx, e.Range)
	case owl.DataMaxCardinality:
		w.v.VisitCardinality(ctx, e.N)
		w.dataProperty(ctx, e.Property)
		w.dataRange(ctx, e.Range)
	case owl.DataExactCardinality:
		w.v.VisitCardinality(ctx, e.N)
		w.dataProperty(ctx, e.Property)
		w.dataRange(ctx, e.Range)
	default:
		w.unknown("class expression", ce)
	}
}

// -- Collections --

func (w *Walker[T]) annotations(parent Option[T], anns []owl.Annotation) {
	ctx := w.v.VisitAnnotations(parent, anns)
	for _, ann := range anns {
		w.annotation(ctx, ann)
	}
}

func (w *Walker[T]) classExpressions(parent Option[T], ces []owl.ClassExpression) {
	ctx := w.v.VisitClassExpressions(parent, ces)
	for _, ce := range ces {
		w.classExpression(ctx, ce)
	}
}

func (w *Walker[T]) objectPropertyExpressions(parent Option[T], opes []owl.ObjectPropertyExpression) {
	ctx := w.v.VisitObjectPropertyExpressions(parent, opes)
	for _, ope := range opes {
		w.objectPropertyExpression(ctx, ope)
	}
}

func (w *Walker[T]) dataProperties(parent Option[T], dps []owl.DataProperty) {
	ctx := w.v.VisitDataProperties(parent, dps)
	for _, dp := range dps {
		w.dataProperty(ctx, dp)
	}
}

func (w *Walker[T]) dataRanges(parent Option[T], drs []owl.DataRange) {
	ctx := w.v.VisitDataRanges(parent, drs)
	for _, dr := range drs {
		w.dataRange(ctx, dr)
	}
}

func (w *Walker[T]) individuals(parent Option[T], inds []owl.Individual) {
	ctx := w.v.VisitIndividuals(parent, inds)
	for _, ind := range inds {
		w.individual(ctx, ind)
	}
}

func (w *Walker[T]) literals(parent Option[T], lits []owl.Literal) {
	ctx := w.v.VisitLiterals(parent, lits)
	for _, lit := range lits {
		w.literal(ctx, lit)
	}
}

func (w *Walker[T]) facetRestrictions(parent Option[T], frs []owl.FacetRestriction) {
	ctx := w.v.VisitFacetRestrictions(parent, frs)
	for _, fr := range frs {
		w.facetRestriction(ctx, fr)
	}
}

func (w *Walker[T]) atoms(parent Option[T], atoms []owl.Atom) {
	ctx := w.v.VisitAtoms(parent, atoms)
	for _, a := range atoms {
		w.atom(ctx, a)
	}
}

func (w *Walker[T]) dArguments(parent Option[T], args []owl.DArgument) {
	ctx := w.v.VisitDArguments(parent, args)
	for _, a := range args {
		w.dArgument(ctx, a)
	}
}
