package skos

// Core namespace IRIs used by the vocabulary graph.
const (
	// Namespace is the SKOS core namespace.
	Namespace = "http://www.w3.org/2004/02/skos/core#"

	// DCTermsNamespace is the Dublin Core terms namespace.
	DCTermsNamespace = "http://purl.org/dc/terms/"

	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OWLNamespace is the OWL namespace.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"

	// XSDNamespace is the XML Schema datatype namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// DCATNamespace is the W3C data catalog vocabulary namespace.
	DCATNamespace = "http://www.w3.org/ns/dcat#"
)

// Class IRIs for vocabulary entities.
const (
	// ClassConceptScheme is the SKOS concept scheme class.
	ClassConceptScheme = Namespace + "ConceptScheme"

	// ClassConcept is the SKOS concept class.
	ClassConcept = Namespace + "Concept"

	// ClassCollection is the SKOS collection class.
	ClassCollection = Namespace + "Collection"
)

// Property IRIs linking vocabulary entities.
const (
	// RDFType is the rdf:type property.
	RDFType = RDFNamespace + "type"

	// PropPrefLabel is the preferred label of a concept or collection.
	PropPrefLabel = Namespace + "prefLabel"

	// PropAltLabel is an alternative label of a concept.
	PropAltLabel = Namespace + "altLabel"

	// PropDefinition is the definition text.
	PropDefinition = Namespace + "definition"

	// PropNarrower links a concept to a narrower (child) concept.
	PropNarrower = Namespace + "narrower"

	// PropBroader links a concept to a broader (parent) concept.
	PropBroader = Namespace + "broader"

	// PropMember links a collection to one of its members.
	PropMember = Namespace + "member"

	// PropInScheme links a concept or collection to its scheme.
	PropInScheme = Namespace + "inScheme"

	// PropTopConceptOf links a root concept to its scheme.
	PropTopConceptOf = Namespace + "topConceptOf"

	// PropHasTopConcept links a scheme to its root concepts.
	PropHasTopConcept = Namespace + "hasTopConcept"

	// PropHistoryNote carries provenance statements.
	PropHistoryNote = Namespace + "historyNote"
)

// Dublin Core and related metadata property IRIs.
const (
	// DcTitle is the vocabulary title.
	DcTitle = DCTermsNamespace + "title"

	// DcDescription is the vocabulary description.
	DcDescription = DCTermsNamespace + "description"

	// DcCreated is the creation date.
	DcCreated = DCTermsNamespace + "created"

	// DcModified is the last modification date.
	DcModified = DCTermsNamespace + "modified"

	// DcCreator is the creating organisation or person.
	DcCreator = DCTermsNamespace + "creator"

	// DcPublisher is the publishing organisation.
	DcPublisher = DCTermsNamespace + "publisher"

	// DcIdentifier is an additional identifier for a concept.
	DcIdentifier = DCTermsNamespace + "identifier"

	// DcSource records where a concept was originally defined.
	DcSource = DCTermsNamespace + "source"

	// OwlVersionInfo is the vocabulary version token.
	OwlVersionInfo = OWLNamespace + "versionInfo"

	// RdfsIsDefinedBy links a concept to its home vocabulary.
	RdfsIsDefinedBy = RDFSNamespace + "isDefinedBy"

	// DcatContactPoint names the custodian of the vocabulary.
	DcatContactPoint = DCATNamespace + "contactPoint"

	// XsdDate is the xsd:date datatype IRI.
	XsdDate = XSDNamespace + "date"
)

// defaultPrefixes returns the namespace prefixes written into serialized
// output. Keys are serialized in sorted order so output is deterministic.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"skos":    Namespace,
		"dcterms": DCTermsNamespace,
		"rdf":     RDFNamespace,
		"rdfs":    RDFSNamespace,
		"owl":     OWLNamespace,
		"xsd":     XSDNamespace,
		"dcat":    DCATNamespace,
	}
}
