package models

// MaxItemRefs is the number of item reference slots a row carries
// (item_1 through item_11).
const MaxItemRefs = 11

// Reserved field names understood by Editor.CommitField. Any other
// field name lands in RowData.Extra.
const (
	FieldCost        = "cost"
	FieldQty         = "qty"
	FieldQuantity    = "quantity"
	FieldTextContent = "text_content"
)

// Row is one record in the estimate grid. A row is addressed by its
// stable ID across mutations; its position in the collection is
// meaningful but never used as an identifier.
type Row struct {
	ID              string  `yaml:"id"`
	IsMainRow       bool    `yaml:"main,omitempty"`
	ParentProductID string  `yaml:"parent_product_id,omitempty"`
	ProductTypeID   string  `yaml:"product_type_id,omitempty"`
	ProductTypeName string  `yaml:"product_type_name,omitempty"`
	TextContent     string  `yaml:"text_content,omitempty"`
	Data            RowData `yaml:"data,omitempty"`
}

// RowData is the per-row field bag. The reserved keys are modeled as
// typed fields; anything else goes through Extra. Cost and Quantity
// hold the raw committed text so a commit never loses what the user
// typed; validation and the preview parse them.
type RowData struct {
	Cost          string              `yaml:"cost,omitempty"`
	Quantity      string              `yaml:"quantity,omitempty"`
	AssemblyGroup *int                `yaml:"assembly_group,omitempty"`
	Items         [MaxItemRefs]string `yaml:"items,flow"`
	Extra         map[string]string   `yaml:"extra,omitempty"`
}

// ProductType is the classification metadata a product-type id
// resolves to.
type ProductType struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Unit string `yaml:"unit,omitempty"`
}

// AssemblyInfo is per-assembly metadata kept alongside the rows: a
// display name and the assembly's own cost, both optional.
type AssemblyInfo struct {
	Index int     `yaml:"index"`
	Name  string  `yaml:"name,omitempty"`
	Cost  float64 `yaml:"cost,omitempty"`
}

// Estimate is a named row collection plus assembly metadata, as
// persisted by pkg/files.
type Estimate struct {
	Name       string         `yaml:"name"`
	Path       string         `yaml:"-"`
	Rows       []Row          `yaml:"rows"`
	Assemblies []AssemblyInfo `yaml:"assemblies,omitempty"`
}
