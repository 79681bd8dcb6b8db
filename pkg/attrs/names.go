package attrs

// Names of all attributes known to Graphviz, as listed at
// https://graphviz.org/doc/info/attrs.html.
const (
	Area               = "area"
	ArrowHead          = "arrowhead"
	ArrowSize          = "arrowsize"
	ArrowTail          = "arrowtail"
	Background         = "_background"
	BB                 = "bb"
	Beautify           = "beautify"
	BgColor            = "bgcolor"
	Center             = "center"
	Charset            = "charset"
	ClusterRank        = "clusterrank"
	Color              = "color"
	ColorScheme        = "colorscheme"
	Comment            = "comment"
	Compound           = "compound"
	Concentrate        = "concentrate"
	Constraint         = "constraint"
	Damping            = "Damping"
	Decorate           = "decorate"
	DefaultDist        = "defaultdist"
	Dim                = "dim"
	Dimen              = "dimen"
	Dir                = "dir"
	DirEdgeConstraints = "diredgeconstraints"
	Distortion         = "distortion"
	DPI                = "dpi"
	EdgeURL            = "edgeURL"
	EdgeHref           = "edgehref"
	EdgeTarget         = "edgetarget"
	EdgeTooltip        = "edgetooltip"
	Epsilon            = "epsilon"
	ESep               = "esep"
	FillColor          = "fillcolor"
	FixedSize          = "fixedsize"
	FontColor          = "fontcolor"
	FontName           = "fontname"
	FontNames          = "fontnames"
	FontPath           = "fontpath"
	FontSize           = "fontsize"
	ForceLabels        = "forcelabels"
	GradientAngle      = "gradientangle"
	Group              = "group"
	HeadURL            = "headURL"
	HeadLP             = "head_lp"
	HeadClip           = "headclip"
	HeadHref           = "headhref"
	HeadLabel          = "headlabel"
	HeadPort           = "headport"
	HeadTarget         = "headtarget"
	HeadTooltip        = "headtooltip"
	Height             = "height"
	Href               = "href"
	Image              = "image"
	ImagePath          = "imagepath"
	ImagePos           = "imagepos"
	ImageScale         = "imagescale"
	InputScale         = "inputscale"
	Cluster            = "cluster"
	K                  = "K"
	Label              = "label"
	LabelURL           = "labelURL"
	LabelScheme        = "label_scheme"
	LabelAngle         = "labelangle"
	LabelDistance      = "labeldistance"
	LabelFloat         = "labelfloat"
	LabelFontColor     = "labelfontcolor"
	LabelFontName      = "labelfontname"
	LabelFontSize      = "labelfontsize"
	LabelHref          = "labelhref"
	LabelJust          = "labeljust"
	LabelLoc           = "labelloc"
	LabelTarget        = "labeltarget"
	LabelTooltip       = "labeltooltip"
	Landscape          = "landscape"
	Layer              = "layer"
	LayerListSep       = "layerlistsep"
	Layers             = "layers"
	LayerSelect        = "layerselect"
	LayerSep           = "layersep"
	Layout             = "layout"
	Len                = "len"
	Levels             = "levels"
	LevelsGap          = "levelsgap"
	LHead              = "lhead"
	LHeight            = "lheight"
	LineLength         = "linelength"
	LP                 = "lp"
	LTail              = "ltail"
	LWidth             = "lwidth"
	Margin             = "margin"
	MaxIter            = "maxiter"
	MCLimit            = "mclimit"
	MinDist            = "mindist"
	MinLen             = "minlen"
	Mode               = "mode"
	Model              = "model"
	NewRank            = "newrank"
	NodeSep            = "nodesep"
	NoJustify          = "nojustify"
	Normalize          = "normalize"
	NoTranslate        = "notranslate"
	NSLimit            = "nslimit"
	NSLimit1           = "nslimit1"
	OneBlock           = "oneblock"
	Ordering           = "ordering"
	Orientation        = "orientation"
	OutputOrder        = "outputorder"
	Overlap            = "overlap"
	OverlapScaling     = "overlap_scaling"
	OverlapShrink      = "overlap_shrink"
	Pack               = "pack"
	PackMode           = "packmode"
	Pad                = "pad"
	Page               = "page"
	PageDir            = "pagedir"
	PenColor           = "pencolor"
	PenWidth           = "penwidth"
	Peripheries        = "peripheries"
	Pin                = "pin"
	Pos                = "pos"
	QuadTree           = "quadtree"
	Quantum            = "quantum"
	Rank               = "rank"
	RankDir            = "rankdir"
	RankSep            = "ranksep"
	Ratio              = "ratio"
	Rects              = "rects"
	Regular            = "regular"
	ReMinCross         = "remincross"
	RepulsiveForce     = "repulsiveforce"
	Resolution         = "resolution"
	Root               = "root"
	Rotate             = "rotate"
	Rotation           = "rotation"
	SameHead           = "samehead"
	SameTail           = "sametail"
	SamplePoints       = "samplepoints"
	Scale              = "scale"
	SearchSize         = "searchsize"
	Sep                = "sep"
	Shape              = "shape"
	ShapeFile          = "shapefile"
	ShowBoxes          = "showboxes"
	Sides              = "sides"
	Size               = "size"
	Skew               = "skew"
	Smoothing          = "smoothing"
	SortV              = "sortv"
	Splines            = "splines"
	Start              = "start"
	Style              = "style"
	Stylesheet         = "stylesheet"
	Class              = "class"
	ID                 = "id"
	TailURL            = "tailURL"
	TailLP             = "tail_lp"
	TailClip           = "tailclip"
	TailHref           = "tailhref"
	TailLabel          = "taillabel"
	TailPort           = "tailport"
	TailTarget         = "tailtarget"
	TailTooltip        = "tailtooltip"
	Target             = "target"
	TBBalance          = "TBbalance"
	Tooltip            = "tooltip"
	TrueColor          = "truecolor"
	URL                = "URL"
	Vertices           = "vertices"
	Viewport           = "viewport"
	VoroMargin         = "voro_margin"
	Weight             = "weight"
	Width              = "width"
	XDotVersion        = "xdotversion"
	XLabel             = "xlabel"
	XLP                = "xlp"
	Z                  = "z"
)

var all = []string{
	Area,
	ArrowHead,
	ArrowSize,
	ArrowTail,
	Background,
	BB,
	Beautify,
	BgColor,
	Center,
	Charset,
	ClusterRank,
	Color,
	ColorScheme,
	Comment,
	Compound,
	Concentrate,
	Constraint,
	Damping,
	Decorate,
	DefaultDist,
	Dim,
	Dimen,
	Dir,
	DirEdgeConstraints,
	Distortion,
	DPI,
	EdgeURL,
	EdgeHref,
	EdgeTarget,
	EdgeTooltip,
	Epsilon,
	ESep,
	FillColor,
	FixedSize,
	FontColor,
	FontName,
	FontNames,
	FontPath,
	FontSize,
	ForceLabels,
	GradientAngle,
	Group,
	HeadURL,
	HeadLP,
	HeadClip,
	HeadHref,
	HeadLabel,
	HeadPort,
	HeadTarget,
	HeadTooltip,
	Height,
	Href,
	Image,
	ImagePath,
	ImagePos,
	ImageScale,
	InputScale,
	Cluster,
	K,
	Label,
	LabelURL,
	LabelScheme,
	LabelAngle,
	LabelDistance,
	LabelFloat,
	LabelFontColor,
	LabelFontName,
	LabelFontSize,
	LabelHref,
	LabelJust,
	LabelLoc,
	LabelTarget,
	LabelTooltip,
	Landscape,
	Layer,
	LayerListSep,
	Layers,
	LayerSelect,
	LayerSep,
	Layout,
	Len,
	Levels,
	LevelsGap,
	LHead,
	LHeight,
	LineLength,
	LP,
	LTail,
	LWidth,
	Margin,
	MaxIter,
	MCLimit,
	MinDist,
	MinLen,
	Mode,
	Model,
	NewRank,
	NodeSep,
	NoJustify,
	Normalize,
	NoTranslate,
	NSLimit,
	NSLimit1,
	OneBlock,
	Ordering,
	Orientation,
	OutputOrder,
	Overlap,
	OverlapScaling,
	OverlapShrink,
	Pack,
	PackMode,
	Pad,
	Page,
	PageDir,
	PenColor,
	PenWidth,
	Peripheries,
	Pin,
	Pos,
	QuadTree,
	Quantum,
	Rank,
	RankDir,
	RankSep,
	Ratio,
	Rects,
	Regular,
	ReMinCross,
	RepulsiveForce,
	Resolution,
	Root,
	Rotate,
	Rotation,
	SameHead,
	SameTail,
	SamplePoints,
	Scale,
	SearchSize,
	Sep,
	Shape,
	ShapeFile,
	ShowBoxes,
	Sides,
	Size,
	Skew,
	Smoothing,
	SortV,
	Splines,
	Start,
	Style,
	Stylesheet,
	Class,
	ID,
	TailURL,
	TailLP,
	TailClip,
	TailHref,
	TailLabel,
	TailPort,
	TailTarget,
	TailTooltip,
	Target,
	TBBalance,
	Tooltip,
	TrueColor,
	URL,
	Vertices,
	Viewport,
	VoroMargin,
	Weight,
	Width,
	XDotVersion,
	XLabel,
	XLP,
	Z,
}
