package biolink

import "strings"

// Category is the kind of entity a node is.
type Category string

// Entity categories.
const (
	CategoryAnatomy        Category = "anatomy"
	CategoryDisease        Category = "disease"
	CategoryFunction       Category = "function"
	CategoryGene           Category = "gene"
	CategoryGenotype       Category = "genotype"
	CategoryHomolog        Category = "homolog"
	CategoryInteraction    Category = "interaction"
	CategoryPublication    Category = "publication"
	CategoryModel          Category = "model"
	CategoryOrthoPhenotype Category = "orthoPhenotype"
	CategoryOrthoDisease   Category = "orthoDisease"
	CategoryPathway        Category = "pathway"
	CategoryPhenotype      Category = "phenotype"
	CategoryVariant        Category = "variant"
)

// AssociationType is a category of association that can be counted for a node.
type AssociationType string

// Association types.
const (
	AssociationGene        AssociationType = "gene"
	AssociationPhenotype   AssociationType = "phenotype"
	AssociationModel       AssociationType = "model"
	AssociationVariant     AssociationType = "variant"
	AssociationGenotype    AssociationType = "genotype"
	AssociationPublication AssociationType = "publication"
	AssociationDisease     AssociationType = "disease"
)

// Categories returns every known category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryAnatomy,
		CategoryDisease,
		CategoryFunction,
		CategoryGene,
		CategoryGenotype,
		CategoryHomolog,
		CategoryInteraction,
		CategoryPublication,
		CategoryModel,
		CategoryOrthoPhenotype,
		CategoryOrthoDisease,
		CategoryPathway,
		CategoryPhenotype,
		CategoryVariant,
	}
}

// ParseCategory resolves a node type to a Category, ignoring case.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(s)
	for _, c := range Categories() {
		if strings.ToLower(string(c)) == s {
			return c, true
		}
	}
	return "", false
}

// AssociationTypes returns the ordered association types valid for c.
// The second result is false for a category with no known associations,
// which callers must not confuse with an empty list.
func AssociationTypes(c Category) ([]AssociationType, bool) {
	switch c {
	case CategoryAnatomy, CategoryFunction, CategoryHomolog, CategoryInteraction,
		CategoryOrthoPhenotype, CategoryOrthoDisease:
		return []AssociationType{AssociationGene}, true
	case CategoryDisease:
		return []AssociationType{
			AssociationGene, AssociationPhenotype, AssociationModel,
			AssociationVariant, AssociationGenotype, AssociationPublication,
		}, true
	case CategoryGene:
		return []AssociationType{
			AssociationDisease, AssociationPhenotype, AssociationModel,
			AssociationVariant, AssociationGenotype, AssociationPublication,
		}, true
	case CategoryGenotype:
		return []AssociationType{
			AssociationDisease, AssociationGene, AssociationPhenotype,
			AssociationModel, AssociationVariant, AssociationPublication,
		}, true
	case CategoryPublication:
		return []AssociationType{AssociationDisease}, true
	case CategoryModel:
		return []AssociationType{
			AssociationDisease, AssociationGene, AssociationGenotype,
			AssociationPhenotype, AssociationVariant, AssociationPublication,
		}, true
	case CategoryPathway:
		return []AssociationType{AssociationDisease, AssociationGene}, true
	case CategoryPhenotype:
		return []AssociationType{
			AssociationDisease, AssociationGene, AssociationGenotype,
			AssociationVariant, AssociationPublication,
		}, true
	case CategoryVariant:
		return []AssociationType{
			AssociationDisease, AssociationGene, AssociationPhenotype,
			AssociationModel, AssociationGenotype, AssociationPublication,
		}, true
	}
	return nil, false
}

// endpointSegment is the path segment of the listing endpoint, e.g. "genes".
func (a AssociationType) endpointSegment() string {
	return string(a) + "s"
}

// annotationPath maps a card type to its association listing path.
func annotationPath(cardType string) string {
	switch cardType {
	case "anatomy":
		return "expression/anatomy"
	case "function":
		return cardType
	}
	return cardType + "s"
}
